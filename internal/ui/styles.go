package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, the balance
	ColorHighlight = "205" // Magenta - for borders, key hints
	ColorDanger    = "196" // Red - for subtract buttons, negative balance
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorSuccess   = "42"  // Green - for add buttons
	ColorWarning   = "214" // Amber - for reset
	ColorInfo      = "39"  // Blue - for start/pause
	ColorRipple    = "255" // White - ripple wash
)

// Styles contains shared style definitions.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - for the card title
	Label   lipgloss.Style // Normal text
	Value   lipgloss.Style // Bold normal text - for counters
	Muted   lipgloss.Style // Dimmed text
	Section lipgloss.Style // Section headers (highlight color)

	// Balance; bold and underlined while pulsing
	Balance         lipgloss.Style
	BalanceNegative lipgloss.Style

	// Overlay box
	Box lipgloss.Style

	// Ripple wash painted over button labels
	Ripple lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Value: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Balance: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	BalanceNegative: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Ripple: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorRipple)).
		Foreground(lipgloss.Color("0")),
}

// buttonColor returns the accent color for a button kind.
func buttonColor(kind buttonKind) string {
	switch kind {
	case kindTimer:
		return ColorInfo
	case kindReset:
		return ColorWarning
	case kindAdd:
		return ColorSuccess
	case kindSubtract:
		return ColorDanger
	case kindMute:
		return ColorMuted
	default:
		return ColorText
	}
}

// buttonStyle returns the bordered frame for a button of the given kind.
func buttonStyle(kind buttonKind) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(buttonColor(kind)))
}
