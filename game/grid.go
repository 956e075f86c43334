package game

import (
	"github.com/faiface/pixel"
	"github.com/they4kman/queensweep/util/collections"
	"math"
)

// Coord is a row/column position on a Grid
type Coord struct {
	Row, Col int
}

// IsOrthogonalTo returns whether other lies directly north, south, east or
// west of coord.
func (coord Coord) IsOrthogonalTo(other Coord) bool {
	dRow, dCol := abs(coord.Row-other.Row), abs(coord.Col-other.Col)
	return dRow+dCol == 1
}

var neighborOffsets = []Coord{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
}

// Grid maps linear square indexes to rows and columns, row-major.
//
// Index and Coord do not check their input; use InBounds or Contains first.
type Grid struct {
	Width, Height int // in number of squares
}

func (grid Grid) Cells() int {
	return grid.Width * grid.Height
}

func (grid Grid) Contains(i int) bool {
	return i >= 0 && i < grid.Cells()
}

func (grid Grid) InBounds(row, col int) bool {
	return row >= 0 && row < grid.Height && col >= 0 && col < grid.Width
}

func (grid Grid) Coord(i int) Coord {
	return Coord{Row: i / grid.Width, Col: i % grid.Width}
}

func (grid Grid) Index(row, col int) int {
	return row*grid.Width + col
}

// Neighbors returns the in-bounds squares of the 8-neighborhood of coord
func (grid Grid) Neighbors(coord Coord) []Coord {
	neighbors := make([]Coord, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		row, col := coord.Row+offset.Row, coord.Col+offset.Col
		if grid.InBounds(row, col) {
			neighbors = append(neighbors, Coord{Row: row, Col: col})
		}
	}
	return neighbors
}

// SafeZone returns square i together with its neighbors
func (grid Grid) SafeZone(i int) collections.Set[int] {
	coord := grid.Coord(i)
	zone := collections.SetOf(i)
	for _, neighbor := range grid.Neighbors(coord) {
		zone.Add(grid.Index(neighbor.Row, neighbor.Col))
	}
	return zone
}

// MaxSafeZone is the size of the largest SafeZone the grid can produce
func (grid Grid) MaxSafeZone() int {
	return minInt(3, grid.Width) * minInt(3, grid.Height)
}

// Layout places the squares of a Grid in layout space, where the origin is
// the top-left corner and y grows downward.
type Layout struct {
	Grid

	// Top-left corner of square 0
	Origin      pixel.Vec
	SquareWidth float64
	// Space left between neighboring squares
	SquareGap float64
}

func (layout Layout) Center(i int) pixel.Vec {
	coord := layout.Coord(i)
	return layout.Origin.Add(pixel.V(
		(float64(coord.Col)+0.5)*layout.SquareWidth,
		(float64(coord.Row)+0.5)*layout.SquareWidth,
	))
}

// Rect is the visible square i, shrunk by the gap
func (layout Layout) Rect(i int) pixel.Rect {
	return squareAround(layout.Center(i), (layout.SquareWidth-layout.SquareGap)/2)
}

// Hitbox is Rect(i) grown by half the gap on every side. Neighboring hitboxes
// share their edges, so use IndexAt to pick the one square under a point.
func (layout Layout) Hitbox(i int) pixel.Rect {
	return squareAround(layout.Center(i), layout.SquareWidth/2)
}

// Bounds covers the whole grid plus a margin of one square on every side
func (layout Layout) Bounds() pixel.Rect {
	margin := pixel.V(layout.SquareWidth, layout.SquareWidth)
	size := pixel.V(float64(layout.Width)*layout.SquareWidth, float64(layout.Height)*layout.SquareWidth)
	return pixel.Rect{
		Min: layout.Origin.Sub(margin),
		Max: layout.Origin.Add(size).Add(margin),
	}
}

// IndexAt returns the square whose hitbox holds pos. Hitboxes are taken as
// half-open, so a point on a shared edge belongs to the square right or below.
func (layout Layout) IndexAt(pos pixel.Vec) (int, bool) {
	rel := pos.Sub(layout.Origin)
	col := int(math.Floor(rel.X / layout.SquareWidth))
	row := int(math.Floor(rel.Y / layout.SquareWidth))
	if !layout.InBounds(row, col) {
		return 0, false
	}
	return layout.Index(row, col), true
}

func squareAround(center pixel.Vec, half float64) pixel.Rect {
	return pixel.R(center.X-half, center.Y-half, center.X+half, center.Y+half)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
