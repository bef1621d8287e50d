package ui

import (
	"savings/internal/calculator"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a bubbles/help model in the app palette.
func newHelpModel() help.Model {
	m := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortKey = keyStyle
	m.Styles.ShortDesc = descStyle
	m.Styles.ShortSeparator = descStyle
	m.Styles.FullKey = keyStyle
	m.Styles.FullDesc = descStyle
	m.Styles.FullSeparator = descStyle
	return m
}

// RenderKeybindHelp produces the one-line key hint bar under the card.
// width <= 0 disables truncation.
func RenderKeybindHelp(reg *KeybindRegistry, v calculator.Variant, width int) string {
	if reg == nil {
		return ""
	}
	m := newHelpModel()
	m.Width = width
	return m.ShortHelpView(NewKeyMap(reg, v).ShortHelp())
}
