package game

import "time"

// SquareState is what a square shows. Number states equal the number of
// neighboring mines, so SquareState(n) is valid for n in 0..8.
type SquareState int

// FieldState is the state of a game session
type FieldState int

const (
	Unrevealed SquareState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	Mine
)

const (
	Ongoing FieldState = iota
	Won
	Lost
)

func (state FieldState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Default 24x14 board with 80 queens, 60px squares
const (
	defaultWidth        = 24
	defaultHeight       = 14
	defaultNumMines     = 80
	defaultSquareWidth  = 60
	defaultSquareGap    = 4
	defaultFadeDuration = 200 * time.Millisecond

	// Power of the in-out curve applied to hover fades
	hoverCurvePower = 2.0
)
