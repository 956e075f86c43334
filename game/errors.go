package game

import "github.com/pkg/errors"

var (
	ErrInvalidSize   = errors.New("invalid field size")
	ErrNegativeMines = errors.New("negative mine count")
	ErrTooManyMines  = errors.New("too many mines for field")
	ErrOutOfRange    = errors.New("square index out of range")
	ErrRevealed      = errors.New("square already revealed")
	ErrFlagged       = errors.New("square is flagged")
	ErrGameOver      = errors.New("game is over")
)
