package ui

import (
	"time"

	"savings/internal/calculator"
)

// Ripple is the transient click highlight on a button. It is pure view
// state and never touches the calculator.
type Ripple struct {
	ID       int
	ButtonID string
	OffsetX  int // Click column relative to the button's left border
	OffsetY  int // Click row relative to the button's top border
	Started  time.Time
	Age      time.Duration
}

// expired reports whether the ripple has run its full course.
func (r Ripple) expired() bool {
	return r.Age >= calculator.RippleDuration
}

// rippleSpan returns the label columns [lo, hi) washed by a ripple centred
// on origin. The radius grows linearly from 1 to the full label width over
// RippleDuration; an expired ripple covers nothing.
func rippleSpan(width, origin int, age time.Duration) (lo, hi int) {
	if width <= 0 || age >= calculator.RippleDuration {
		return 0, 0
	}
	if age < 0 {
		age = 0
	}
	if origin < 0 {
		origin = 0
	}
	if origin > width-1 {
		origin = width - 1
	}
	radius := 1 + int(float64(width)*float64(age)/float64(calculator.RippleDuration))
	lo = origin - radius + 1
	hi = origin + radius
	if lo < 0 {
		lo = 0
	}
	if hi > width {
		hi = width
	}
	return lo, hi
}

// latestRipple returns the newest ripple on the given button, or nil.
func latestRipple(ripples []Ripple, buttonID string) *Ripple {
	for i := len(ripples) - 1; i >= 0; i-- {
		if ripples[i].ButtonID == buttonID {
			return &ripples[i]
		}
	}
	return nil
}
