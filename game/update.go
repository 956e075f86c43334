package game

import (
	"github.com/faiface/pixel"
	"time"
)

// Input is one frame worth of player input, in layout space
type Input struct {
	Mouse pixel.Vec
	// True only on the frame the button went down
	LeftClicked, RightClicked bool
	// Time since the previous frame
	Elapsed time.Duration
}

// Update applies a frame of input: clicks on the hovered square, then hover
// fades for every hidden square.
func (field *Field) Update(in Input) {
	hovered, onField := field.layout.IndexAt(in.Mouse)
	for i := range field.squares {
		square := &field.squares[i]
		if square.isRevealed {
			continue
		}

		hovering := onField && i == hovered
		canPlay := field.state == Ongoing

		if hovering && in.LeftClicked && canPlay && !square.hasFlag {
			if err := field.Reveal(i); err != nil {
				Log.WithError(err).WithField("square", i).Warn("could not reveal square")
			}
			continue
		}

		if hovering && in.RightClicked && canPlay {
			if err := field.ToggleFlag(i); err != nil {
				Log.WithError(err).WithField("square", i).Warn("could not flag square")
			} else if !square.hasFlag {
				square.fade.Forwards()
				square.isHovering = true
			}
		}

		if square.hasFlag {
			continue
		}

		if hovering {
			if !square.isHovering {
				square.fade.Forwards()
			}
			square.isHovering = true
		} else if square.isHovering {
			square.isHovering = false
			square.fade.Backwards()
		}
		if square.fade.Running() {
			square.fade.Update(in.Elapsed)
		}
	}
}
