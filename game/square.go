package game

import (
	"fmt"
	"github.com/they4kman/queensweep/anim"
)

type Square struct {
	hasMine, isRevealed, hasFlag bool
	numMines                     int

	isHovering bool
	fade       anim.Fade

	// Set while a single reveal is flooding the field
	visited bool
}

func (square Square) String() string {
	return fmt.Sprintf("Square(%v)", square.State())
}

func (square Square) HasMine() bool {
	return square.hasMine
}

func (square Square) IsRevealed() bool {
	return square.isRevealed
}

func (square Square) HasFlag() bool {
	return square.hasFlag
}

// NumMines is the number of mined neighbors. It is meaningless for mines and
// before mines are placed.
func (square Square) NumMines() int {
	return square.numMines
}

func (square Square) IsHovering() bool {
	return square.isHovering
}

func (square Square) HoverProgress() float64 {
	return square.fade.Progress()
}

// State derives what the square currently shows
func (square Square) State() SquareState {
	switch {
	case !square.isRevealed && square.hasFlag:
		return Flag
	case !square.isRevealed:
		return Unrevealed
	case square.hasMine:
		return Mine
	default:
		return SquareState(square.numMines)
	}
}
