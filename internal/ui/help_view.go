package ui

import (
	"savings/internal/calculator"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpView lists every key binding for the current variant.
type HelpView struct {
	keys  help.KeyMap
	help  help.Model
	title string
}

// NewHelpView creates the help overlay content.
func NewHelpView(reg *KeybindRegistry, v calculator.Variant) *HelpView {
	h := newHelpModel()
	h.ShowAll = true
	return &HelpView{
		keys:  NewKeyMap(reg, v),
		help:  h,
		title: "Keys (" + v.String() + ")",
	}
}

// Init implements View.
func (h *HelpView) Init() tea.Cmd { return nil }

// Update implements View. The help overlay has no interaction of its own.
func (h *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	return h, nil
}

// View implements View.
func (h *HelpView) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(h.title),
		"",
		h.help.View(h.keys),
		"",
		Styles.Muted.Render("Mouse: click any button. esc closes this help."),
	)
	return Styles.Box.Render(body)
}
