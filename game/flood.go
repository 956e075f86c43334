package game

import "github.com/gammazero/deque"

// flood reveals square start and spreads from every blank square it reaches:
// orthogonal neighbors are always followed, diagonal neighbors only when they
// are numbered. Mined and flagged squares are never entered, and each square
// enters the worklist at most once.
func (field *Field) flood(start int) {
	for i := range field.squares {
		field.squares[i].visited = false
	}

	var stack deque.Deque
	field.squares[start].visited = true
	stack.PushBack(start)

	for stack.Len() > 0 {
		i := stack.PopBack().(int)
		field.revealSquare(i)

		square := &field.squares[i]
		if square.hasMine || square.numMines != 0 {
			continue
		}

		coord := field.grid.Coord(i)
		for _, neighborCoord := range field.grid.Neighbors(coord) {
			n := field.grid.Index(neighborCoord.Row, neighborCoord.Col)
			neighbor := &field.squares[n]
			if neighbor.visited || neighbor.hasMine || neighbor.hasFlag {
				continue
			}

			if coord.IsOrthogonalTo(neighborCoord) || neighbor.numMines > 0 {
				neighbor.visited = true
				stack.PushBack(n)
			}
		}
	}
}
