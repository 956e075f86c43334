package display

import (
	"fmt"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/queensweep/game"
	"golang.org/x/image/colornames"
)

type renderer struct {
	imd    *imdraw.IMDraw
	label  *text.Text
	status *text.Text

	// Layout-space area shown below the header
	bounds     pixel.Rect
	squareSize float64
}

func newRenderer(layout game.Layout, atlas *text.Atlas) *renderer {
	bounds := layout.Bounds()
	return &renderer{
		imd:        imdraw.New(nil),
		label:      text.New(pixel.ZV, atlas),
		status:     text.New(pixel.V(20, bounds.H()+headerHeight/2-6), atlas),
		bounds:     bounds,
		squareSize: layout.SquareWidth - layout.SquareGap,
	}
}

// toScreen flips layout space (y down) into window space (y up)
func (r *renderer) toScreen(v pixel.Vec) pixel.Vec {
	return pixel.V(v.X-r.bounds.Min.X, r.bounds.Max.Y-v.Y)
}

func (r *renderer) toLayout(v pixel.Vec) pixel.Vec {
	return pixel.V(v.X+r.bounds.Min.X, r.bounds.Max.Y-v.Y)
}

func (r *renderer) draw(target pixel.Target, list game.DrawList) {
	r.imd.Clear()
	for _, rect := range list.Rects {
		r.imd.Color = rect.Color
		r.imd.Push(r.toScreen(rect.Bounds.Min), r.toScreen(rect.Bounds.Max))
		r.imd.Rectangle(0)
	}
	r.imd.Draw(target)

	for _, label := range list.Labels {
		r.drawLabel(target, label)
	}

	r.imd.Clear()
	for _, sprite := range list.Sprites {
		r.drawSprite(sprite)
	}
	r.imd.Draw(target)
}

func (r *renderer) drawLabel(target pixel.Target, label game.Label) {
	r.label.Clear()
	r.label.Color = label.Color
	fmt.Fprint(r.label, label.Text)

	center := r.toScreen(label.Center)
	scale := r.squareSize * labelScale / r.label.LineHeight

	bounds := r.label.Bounds()
	r.label.Draw(target, pixel.IM.Moved(center.Sub(bounds.Center())).Scaled(center, scale))
}

// drawSprite draws the piece shapes with imdraw, so no textures are needed
func (r *renderer) drawSprite(sprite game.Sprite) {
	c := r.toScreen(sprite.Center)
	s := sprite.Size
	at := func(x, y float64) pixel.Vec {
		return c.Add(pixel.V(x*s, y*s))
	}

	switch sprite.Asset {
	case game.AssetPawn:
		r.imd.Color = pixel.ToRGBA(colornames.White).Mul(pixel.Alpha(0.6))
		r.imd.Push(at(0, 0.17))
		r.imd.Circle(0.12*s, 0)
		r.imd.Push(at(-0.22, -0.3), at(0.22, -0.3), at(0.08, 0.05), at(-0.08, 0.05))
		r.imd.Polygon(0)

	case game.AssetFlag:
		r.imd.Color = colornames.Black
		r.imd.Push(at(0, -0.32), at(0, 0.32))
		r.imd.Line(0.04 * s)
		r.imd.Push(at(-0.2, -0.32), at(0.2, -0.32))
		r.imd.Line(0.06 * s)
		r.imd.Color = colornames.Red
		r.imd.Push(at(0, 0.32), at(0.3, 0.17), at(0, 0.02))
		r.imd.Polygon(0)

	case game.AssetQueen:
		r.imd.Color = colornames.Black
		r.imd.Push(at(-0.28, -0.32), at(0.28, -0.32), at(0.2, -0.05), at(-0.2, -0.05))
		r.imd.Polygon(0)
		for _, tip := range []pixel.Vec{pixel.V(-0.32, 0.2), pixel.V(0, 0.28), pixel.V(0.32, 0.2)} {
			r.imd.Push(at(tip.X*0.5-0.1, -0.05), at(tip.X*0.5+0.1, -0.05), at(tip.X, tip.Y))
			r.imd.Polygon(0)
			r.imd.Push(at(tip.X, tip.Y))
			r.imd.Circle(0.05*s, 0)
		}
	}
}

func (r *renderer) drawStatus(target pixel.Target, field *game.Field) {
	r.status.Clear()
	r.status.Color = colornames.Black
	fmt.Fprintf(r.status, "%03d", field.NumMines()-field.NumFlags())

	switch field.State() {
	case game.Won:
		r.status.Color = colornames.Green
		fmt.Fprint(r.status, "   WIN!  (enter: new game)")
	case game.Lost:
		r.status.Color = colornames.Red
		fmt.Fprint(r.status, "   LOSE :(  (enter: new game)")
	}

	r.status.Draw(target, pixel.IM.Scaled(r.status.Orig, 2))
}
