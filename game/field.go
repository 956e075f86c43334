package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/queensweep/anim"
	"github.com/they4kman/queensweep/util/collections"
	"math/rand"
)

// Field owns every square of one game session. It is not safe for concurrent
// use; the frame loop that calls Update and Draw owns it.
type Field struct {
	grid    Grid
	layout  Layout
	palette Palette
	squares []Square

	numMines    int
	minesPlaced bool
	numFlags    int

	state FieldState
	// Hidden squares without a mine; the game is won once it is empty
	remaining collections.Set[int]

	rand *rand.Rand
}

// NewField validates config and creates a field with every square hidden.
// Mines are placed on the first reveal.
func NewField(config Config) (*Field, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newField(config), nil
}

func newField(config Config) *Field {
	field := &Field{
		grid:      config.grid(),
		layout:    config.layout(),
		palette:   DefaultPalette(),
		squares:   make([]Square, config.grid().Cells()),
		numMines:  config.NumMines,
		state:     Ongoing,
		remaining: make(collections.Set[int]),
		rand:      rand.New(rand.NewSource(config.Seed)),
	}

	for i := range field.squares {
		field.squares[i].fade = anim.NewFade(config.FadeDuration)
		field.remaining.Add(i)
	}

	Log.WithFields(logrus.Fields{
		"width":  config.Width,
		"height": config.Height,
		"mines":  config.NumMines,
		"seed":   config.Seed,
	}).Debug("created field")

	return field
}

func (field *Field) Grid() Grid {
	return field.grid
}

func (field *Field) Layout() Layout {
	return field.layout
}

func (field *Field) State() FieldState {
	return field.state
}

func (field *Field) NumMines() int {
	return field.numMines
}

func (field *Field) NumFlags() int {
	return field.numFlags
}

func (field *Field) MinesPlaced() bool {
	return field.minesPlaced
}

// Square returns a copy of square i. It panics if i is out of range.
func (field *Field) Square(i int) Square {
	return field.squares[i]
}

// Reveal opens square i and floods connected safe squares. Revealing an
// already revealed square does nothing. Revealing a mine reveals the whole
// field and loses the game.
func (field *Field) Reveal(i int) error {
	if !field.grid.Contains(i) {
		return errors.Wrapf(ErrOutOfRange, "reveal %d", i)
	}

	square := &field.squares[i]
	if square.isRevealed {
		return nil
	}
	if field.state != Ongoing {
		return errors.Wrapf(ErrGameOver, "reveal %d", i)
	}
	if square.hasFlag {
		return errors.Wrapf(ErrFlagged, "reveal %d", i)
	}

	if !field.minesPlaced {
		if err := field.placeMines(i); err != nil {
			return err
		}
	}

	field.flood(i)

	if square.hasMine {
		field.revealAll()
		field.lose(i)
	} else if field.remaining.Len() == 0 {
		field.win()
	}
	return nil
}

// ToggleFlag flips the flag on hidden square i
func (field *Field) ToggleFlag(i int) error {
	if !field.grid.Contains(i) {
		return errors.Wrapf(ErrOutOfRange, "flag %d", i)
	}
	if field.state != Ongoing {
		return errors.Wrapf(ErrGameOver, "flag %d", i)
	}

	square := &field.squares[i]
	if square.isRevealed {
		return errors.Wrapf(ErrRevealed, "flag %d", i)
	}

	square.hasFlag = !square.hasFlag
	if square.hasFlag {
		field.numFlags++
	} else {
		field.numFlags--
	}
	return nil
}

func (field *Field) revealSquare(i int) {
	square := &field.squares[i]
	square.isRevealed = true
	if square.hasFlag {
		square.hasFlag = false
		field.numFlags--
	}
	field.remaining.Remove(i)
}

// revealAll opens every square without flooding
func (field *Field) revealAll() {
	for i := range field.squares {
		field.revealSquare(i)
	}
}

func (field *Field) lose(i int) {
	field.state = Lost

	coord := field.grid.Coord(i)
	Log.WithFields(logrus.Fields{
		"row": coord.Row,
		"col": coord.Col,
	}).Info("revealed a mine, game lost")
}

func (field *Field) win() {
	field.state = Won
	Log.WithField("mines", field.numMines).Info("revealed every safe square, game won")
}
