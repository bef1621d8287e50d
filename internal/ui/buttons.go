package ui

import (
	"strconv"

	"savings/internal/calculator"
	"savings/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type buttonKind int

const (
	kindTimer buttonKind = iota
	kindReset
	kindAdd
	kindSubtract
	kindMute
)

// Button geometry. A button is a rounded box one label row tall.
const (
	buttonPadX   = 1
	buttonHeight = 3
	buttonGap    = 1
)

// button is a clickable control. Msg is handled exactly like the key
// binding that sends the same message.
type button struct {
	ID    string
	Kind  buttonKind
	Label string
	Msg   tea.Msg
}

// placedButton is a button with its screen rectangle.
type placedButton struct {
	button
	X, Y, W, H int
}

func (p placedButton) contains(x, y int) bool {
	return x >= p.X && x < p.X+p.W && y >= p.Y && y < p.Y+p.H
}

// buttonRows returns the controls for the current state, one slice per row.
func buttonRows(c *calculator.Calculator) [][]button {
	timerLabel := "Start"
	if c.Running() {
		timerLabel = "Pause"
	}
	rows := [][]button{{
		{ID: "timer", Kind: kindTimer, Label: timerLabel, Msg: ToggleTimerMsg{}},
		{ID: "reset", Kind: kindReset, Label: "Reset", Msg: ResetMsg{}},
	}}

	var adds, subs []button
	for _, d := range calculator.Denominations() {
		amount := strconv.Itoa(int(d))
		adds = append(adds, button{ID: "add-" + amount, Kind: kindAdd, Label: "Add $" + amount, Msg: AddMsg{Amount: d}})
		subs = append(subs, button{ID: "sub-" + amount, Kind: kindSubtract, Label: "Subtract $" + amount, Msg: SubtractMsg{Amount: d}})
	}
	rows = append(rows, adds, subs)

	if c.Variant() == calculator.VariantTracked {
		muteLabel := "Mute"
		if c.Muted() {
			muteLabel = "Unmute"
		}
		rows = append(rows, []button{{ID: "mute", Kind: kindMute, Label: muteLabel, Msg: ToggleMuteMsg{}}})
	}
	return rows
}

func buttonWidth(label string) int {
	return textutil.VisualWidth(label) + 2*buttonPadX + 2
}

// layoutButtons places rows top to bottom starting at (x, y).
func layoutButtons(rows [][]button, x, y int) []placedButton {
	var placed []placedButton
	for _, row := range rows {
		cx := x
		for _, b := range row {
			w := buttonWidth(b.Label)
			placed = append(placed, placedButton{button: b, X: cx, Y: y, W: w, H: buttonHeight})
			cx += w + buttonGap
		}
		y += buttonHeight
	}
	return placed
}

// renderButton draws p, washing the part of the label covered by r.
func renderButton(p placedButton, r *Ripple) string {
	inner := p.W - 2
	label := textutil.PadCenter(p.Label, inner)
	fg := lipgloss.NewStyle().Foreground(lipgloss.Color(buttonColor(p.Kind)))

	content := fg.Render(label)
	if r != nil {
		lo, hi := rippleSpan(inner, r.OffsetX-1, r.Age)
		if hi > lo {
			before, mid, after := textutil.SplitColumns(label, lo, hi)
			content = fg.Render(before) + Styles.Ripple.Render(mid) + fg.Render(after)
		}
	}
	return buttonStyle(p.Kind).Render(content)
}

// renderButtonRows joins placed buttons back into their rows.
func renderButtonRows(placed []placedButton, ripples []Ripple) string {
	var rows []string
	var current []string
	rowY := -1
	for _, p := range placed {
		if p.Y != rowY && len(current) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
		rowY = p.Y
		if len(current) > 0 {
			current = append(current, " ")
		}
		current = append(current, renderButton(p, latestRipple(ripples, p.ID)))
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
