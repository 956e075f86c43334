package game

import (
	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
	"image/color"
	"strconv"
)

type Asset int

const (
	AssetPawn Asset = iota
	AssetFlag
	AssetQueen
)

func (asset Asset) String() string {
	switch asset {
	case AssetPawn:
		return "pawn"
	case AssetFlag:
		return "flag"
	case AssetQueen:
		return "queen"
	default:
		return "unknown"
	}
}

type Rect struct {
	Bounds pixel.Rect
	Color  pixel.RGBA
}

type Label struct {
	Text   string
	Color  pixel.RGBA
	Center pixel.Vec
}

type Sprite struct {
	Asset  Asset
	Center pixel.Vec
	// Side of the square the sprite should fit in
	Size float64
}

// DrawList is everything needed to render a field, in layout space. Hosts
// draw Rects, then Labels, then Sprites.
type DrawList struct {
	Rects   []Rect
	Labels  []Label
	Sprites []Sprite
}

type Palette struct {
	Hidden, Hover, Revealed, Alarm pixel.RGBA
	// Label colors for Number1 through Number8
	Numbers [8]pixel.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Hidden:   pixel.ToRGBA(colornames.Gainsboro),
		Hover:    pixel.ToRGBA(colornames.White),
		Revealed: pixel.ToRGBA(colornames.Silver),
		Alarm:    pixel.ToRGBA(colornames.Red),
		Numbers: [8]pixel.RGBA{
			rgb(2, 20, 253),
			rgb(1, 126, 20),
			rgb(254, 0, 0),
			rgb(1, 1, 128),
			rgb(126, 3, 3),
			pixel.ToRGBA(colornames.Teal),
			pixel.ToRGBA(colornames.Black),
			pixel.ToRGBA(colornames.Gray),
		},
	}
}

// Draw derives the field's primitives from the current square states
func (field *Field) Draw() DrawList {
	list := DrawList{Rects: make([]Rect, 0, len(field.squares))}
	size := field.layout.SquareWidth - field.layout.SquareGap

	for i, square := range field.squares {
		center := field.layout.Center(i)
		state := square.State()

		list.Rects = append(list.Rects, Rect{
			Bounds: field.layout.Rect(i),
			Color:  field.squareColor(square),
		})

		switch {
		case state == Unrevealed:
			list.Sprites = append(list.Sprites, Sprite{Asset: AssetPawn, Center: center, Size: size})
		case state == Flag:
			list.Sprites = append(list.Sprites, Sprite{Asset: AssetFlag, Center: center, Size: size})
		case state == Mine:
			list.Sprites = append(list.Sprites, Sprite{Asset: AssetQueen, Center: center, Size: size})
		case state >= Number1 && state <= Number8:
			list.Labels = append(list.Labels, Label{
				Text:   strconv.Itoa(int(state)),
				Color:  field.palette.Numbers[state-Number1],
				Center: center,
			})
		}
	}

	return list
}

func (field *Field) squareColor(square Square) pixel.RGBA {
	switch square.State() {
	case Mine:
		return field.palette.Alarm
	case Unrevealed:
		return lerp(field.palette.Hidden, field.palette.Hover, square.fade.CurveProgress(hoverCurvePower))
	default:
		return field.palette.Revealed
	}
}

func lerp(from, to pixel.RGBA, t float64) pixel.RGBA {
	return pixel.RGBA{
		R: from.R + (to.R-from.R)*t,
		G: from.G + (to.G-from.G)*t,
		B: from.B + (to.B-from.B)*t,
		A: from.A + (to.A-from.A)*t,
	}
}

func rgb(r, g, b uint8) pixel.RGBA {
	return pixel.ToRGBA(color.RGBA{R: r, G: g, B: b, A: 255})
}
