package ui

import (
	"log"
	"time"

	"savings/internal/calculator"

	tea "github.com/charmbracelet/bubbletea"
)

// rippleFrameInterval is the repaint cadence of a running ripple.
const rippleFrameInterval = 100 * time.Millisecond

// scheduler has the signature of tea.Tick, which is the production value.
type scheduler func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// tickCmd schedules the next tick of schedule gen.
func (a *AppModel) tickCmd(gen int) tea.Cmd {
	return a.after(calculator.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// pulseCmd clears the pulse after PulseDuration. It is never cancelled.
func (a *AppModel) pulseCmd() tea.Cmd {
	return a.after(calculator.PulseDuration, func(time.Time) tea.Msg {
		return pulseEndMsg{}
	})
}

// rippleFrameCmd schedules the next frame of ripple id.
func (a *AppModel) rippleFrameCmd(id int) tea.Cmd {
	return a.after(rippleFrameInterval, func(t time.Time) tea.Msg {
		return rippleFrameMsg{id: id, at: t}
	})
}

// playSoundCmd plays the clip off the event loop. Failures are logged and
// dropped; they never produce a message.
func (a *AppModel) playSoundCmd() tea.Cmd {
	p := a.Player
	return func() tea.Msg {
		if err := p.Play(); err != nil {
			log.Printf("sound: play failed: %v", err)
		}
		return nil
	}
}
