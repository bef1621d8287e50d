package ui

import (
	"time"

	"savings/internal/calculator"
)

// ToggleTimerMsg is sent by the start/pause button (s, space).
type ToggleTimerMsg struct{}

// ResetMsg is sent by the reset button (r).
type ResetMsg struct{}

// AddMsg is sent by an add button (1, 2, 3).
type AddMsg struct {
	Amount calculator.Denomination
}

// SubtractMsg is sent by a subtract button (!, @, #).
type SubtractMsg struct {
	Amount calculator.Denomination
}

// ToggleMuteMsg is sent by the mute button (m). Tracked variant only.
type ToggleMuteMsg struct{}

// ToggleActivityMsg shows or hides the activity log (l).
type ToggleActivityMsg struct{}

// ShowHelpMsg opens the help overlay (?).
type ShowHelpMsg struct{}

// tickMsg is one timer tick. gen must match AppModel.timerGen or the tick
// belongs to a schedule that has since been stopped.
type tickMsg struct {
	gen int
	at  time.Time
}

// pulseEndMsg clears the balance pulse.
type pulseEndMsg struct{}

// rippleFrameMsg repaints (or retires) the ripple with the given id.
type rippleFrameMsg struct {
	id int
	at time.Time
}
