// Package display runs a pixelgl window around a game.Field. Run must be
// called from the function handed to pixelgl.Run.
package display

import (
	"fmt"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"github.com/they4kman/queensweep/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
	"time"
)

const (
	headerHeight = 40

	// Height of a number label relative to its square
	labelScale = 0.6
)

type Options struct {
	Title string

	// Plays instead of the mouse when set
	Director         game.Director
	DirectorInterval time.Duration
}

// FieldFactory creates the field for each new game
type FieldFactory func() (*game.Field, error)

// Run opens the window and plays until it is closed. Enter starts a new game
// once the current one is over.
func Run(newField FieldFactory, opts Options) error {
	field, err := newField()
	if err != nil {
		return err
	}

	fieldBounds := field.Layout().Bounds()
	cfg := pixelgl.WindowConfig{
		Title:  opts.Title,
		Bounds: pixel.R(0, 0, fieldBounds.W(), fieldBounds.H()+headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return errors.Wrap(err, "open window")
	}
	defer win.Destroy()

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	renderer := newRenderer(field.Layout(), atlas)

	var (
		frames    = 0
		second    = time.Tick(time.Second)
		lastFrame = time.Now()
		lastAct   = time.Now()
	)

	for !win.Closed() {
		win.Update()

		now := time.Now()
		elapsed := now.Sub(lastFrame)
		lastFrame = now

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if field.State() != game.Ongoing && win.JustPressed(pixelgl.KeyEnter) {
			next, err := newField()
			if err != nil {
				return err
			}
			field = next
		}

		in := game.Input{Elapsed: elapsed}
		if win.MouseInsideWindow() {
			in.Mouse = renderer.toLayout(win.MousePosition())
			in.LeftClicked = win.JustPressed(pixelgl.MouseButtonLeft)
			in.RightClicked = win.JustPressed(pixelgl.MouseButtonRight)
		} else {
			// Far outside every hitbox, so hovers fade out
			in.Mouse = fieldBounds.Min.Sub(pixel.V(1, 1))
		}
		if opts.Director != nil {
			in.LeftClicked, in.RightClicked = false, false
		}
		field.Update(in)

		if opts.Director != nil && now.Sub(lastAct) >= opts.DirectorInterval {
			lastAct = now
			if _, err := opts.Director.Act(field); err != nil {
				game.Log.WithError(err).Warn("director could not act")
			}
		}

		win.Clear(colornames.Gray)
		renderer.draw(win, field.Draw())
		renderer.drawStatus(win, field)
	}

	return nil
}
