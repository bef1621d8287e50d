package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained region with its own update loop. Overlays host
// Views on top of the card.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
