package game

import (
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

// newPresetField builds a field from rows of '*' (mine) and '.' (safe), with
// mines already placed.
func newPresetField(t *testing.T, rows ...string) *Field {
	t.Helper()
	require.NotEmpty(t, rows)

	config := DefaultConfig()
	config.Width, config.Height = len(rows[0]), len(rows)
	config.Seed = 1

	var mines []int
	for row, line := range rows {
		require.Len(t, line, config.Width, "row %d", row)
		for col, c := range line {
			if c == '*' {
				mines = append(mines, row*config.Width+col)
			}
		}
	}

	config.NumMines = len(mines)
	field := newField(config)
	field.layMines(mines)
	return field
}

// revealedMap renders revealed squares as 'o' and hidden ones as '#'
func revealedMap(field *Field) string {
	var out strings.Builder
	for i := range field.squares {
		if i > 0 && i%field.grid.Width == 0 {
			out.WriteByte('\n')
		}
		if field.squares[i].isRevealed {
			out.WriteByte('o')
		} else {
			out.WriteByte('#')
		}
	}
	return out.String()
}

func countMines(field *Field) int {
	total := 0
	for _, square := range field.squares {
		if square.hasMine {
			total++
		}
	}
	return total
}

// bruteNeighborMines counts mined squares around i without Grid.Neighbors
func bruteNeighborMines(field *Field, i int) int {
	row, col := i/field.grid.Width, i%field.grid.Width
	total := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if r < 0 || c < 0 || r >= field.grid.Height || c >= field.grid.Width {
				continue
			}
			if field.squares[r*field.grid.Width+c].hasMine {
				total++
			}
		}
	}
	return total
}

func testConfig(width, height, mines int, seed int64) Config {
	config := DefaultConfig()
	config.Width, config.Height, config.NumMines, config.Seed = width, height, mines, seed
	return config
}
