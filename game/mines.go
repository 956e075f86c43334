package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// placeMines spreads the field's mines uniformly over the squares outside the
// safe zone of square safe.
func (field *Field) placeMines(safe int) error {
	safeZone := field.grid.SafeZone(safe)

	candidates := make([]int, 0, field.grid.Cells())
	for i := range field.squares {
		if !safeZone.Contains(i) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < field.numMines {
		return errors.Wrapf(ErrTooManyMines, "%d mines, %d squares outside the safe zone",
			field.numMines, len(candidates))
	}

	field.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	field.layMines(candidates[:field.numMines])

	coord := field.grid.Coord(safe)
	Log.WithFields(logrus.Fields{
		"row":   coord.Row,
		"col":   coord.Col,
		"mines": field.numMines,
	}).Debug("placed mines")

	return nil
}

// layMines puts a mine on each given square, then counts neighbors for every
// safe square.
func (field *Field) layMines(mines []int) {
	for _, i := range mines {
		field.squares[i].hasMine = true
	}
	field.minesPlaced = true
	field.numMines = len(mines)

	for i := range field.squares {
		square := &field.squares[i]
		if square.hasMine {
			field.remaining.Remove(i)
			continue
		}

		square.numMines = 0
		for _, neighbor := range field.grid.Neighbors(field.grid.Coord(i)) {
			if field.squares[field.grid.Index(neighbor.Row, neighbor.Col)].hasMine {
				square.numMines++
			}
		}
	}
}
