// Package anim holds the small timers and easing curves used for cosmetic
// transitions, such as the hover highlight on hidden squares.
package anim

import (
	"math"
	"time"
)

// Fade moves a progress value between 0 and 1 over a fixed duration, in
// whichever direction it was last told to go.
type Fade struct {
	duration  time.Duration
	progress  float64
	direction float64
}

func NewFade(duration time.Duration) Fade {
	return Fade{duration: duration}
}

// Forwards starts moving progress towards 1
func (fade *Fade) Forwards() {
	fade.direction = 1
}

// Backwards starts moving progress towards 0
func (fade *Fade) Backwards() {
	fade.direction = -1
}

// Update advances the fade by the time elapsed since the previous frame
func (fade *Fade) Update(elapsed time.Duration) {
	if fade.direction == 0 {
		return
	}

	if fade.duration <= 0 {
		fade.progress = math.Max(fade.direction, 0)
	} else {
		fade.progress += fade.direction * float64(elapsed) / float64(fade.duration)
	}

	switch {
	case fade.direction > 0 && fade.progress >= 1:
		fade.progress = 1
		fade.direction = 0
	case fade.direction < 0 && fade.progress <= 0:
		fade.progress = 0
		fade.direction = 0
	}
}

// Running returns whether the fade has yet to reach the end it is heading to
func (fade *Fade) Running() bool {
	return fade.direction != 0
}

func (fade *Fade) Progress() float64 {
	return fade.progress
}

// CurveProgress returns the progress eased through InOutPow
func (fade *Fade) CurveProgress(power float64) float64 {
	return InOutPow(fade.progress, power)
}

// InOutPow eases t in [0, 1] with a symmetric power curve. A power of 3 is the
// classic in-out cubic.
func InOutPow(t, power float64) float64 {
	t = math.Min(math.Max(t, 0), 1)
	if t < 0.5 {
		return 0.5 * math.Pow(2*t, power)
	}
	return 1 - 0.5*math.Pow(2*(1-t), power)
}
