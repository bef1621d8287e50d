package ui

import (
	"strconv"
	"strings"

	"savings/internal/calculator"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation except space, which is "space".
type KeybindRegistry struct {
	bindings      map[string]tea.Cmd
	descriptions  map[string]string
	variantFilter map[string][]calculator.Variant // nil/empty = applies to all variants
	order         []string                        // registration order, for help
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:      make(map[string]tea.Cmd),
		descriptions:  make(map[string]string),
		variantFilter: make(map[string][]calculator.Variant),
	}
}

// Bind registers a key to a command without a help entry.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
// The binding applies to all variants.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForVariants(seq, cmd, desc, nil)
}

// BindWithDescForVariants registers a key that only works in the given
// variants. If variants is empty, the binding applies to all of them.
func (r *KeybindRegistry) BindWithDescForVariants(seq string, cmd tea.Cmd, desc string, variants []calculator.Variant) {
	n := normalizeSeq(seq)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(variants) > 0 {
		r.variantFilter[n] = variants
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupFor is Lookup restricted to bindings that apply to v.
func (r *KeybindRegistry) LookupFor(seq string, v calculator.Variant) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, v) {
		return nil
	}
	return r.bindings[n]
}

// Hint is one help entry.
type Hint struct {
	Key  string
	Desc string
}

// Hints returns described bindings that apply to v, in registration order.
func (r *KeybindRegistry) Hints(v calculator.Variant) []Hint {
	out := make([]Hint, 0, len(r.descriptions))
	for _, seq := range r.order {
		desc, ok := r.descriptions[seq]
		if !ok || r.bindings[seq] == nil || !r.appliesTo(seq, v) {
			continue
		}
		out = append(out, Hint{Key: seq, Desc: desc})
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, v calculator.Variant) bool {
	variants, ok := r.variantFilter[seq]
	if !ok || len(variants) == 0 {
		return true
	}
	for _, x := range variants {
		if x == v {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// " " -> "space", everything else unchanged.
func normalizeSeq(seq string) string {
	if seq == " " {
		return "space"
	}
	return strings.TrimSpace(seq)
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
type KeyMap struct {
	registry *KeybindRegistry
	variant  calculator.Variant
}

// NewKeyMap creates a KeyMap for the given registry and variant.
func NewKeyMap(registry *KeybindRegistry, v calculator.Variant) help.KeyMap {
	return &KeyMap{registry: registry, variant: v}
}

func (km *KeyMap) bindings() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints(km.variant)
	out := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		out = append(out, key.NewBinding(
			key.WithKeys(h.Key),
			key.WithHelp(h.Key, h.Desc),
		))
	}
	return out
}

// ShortHelp returns bindings for the one-line help bar.
func (km *KeyMap) ShortHelp() []key.Binding {
	return km.bindings()
}

// fullHelpColumn is the number of bindings per column in the full help view.
const fullHelpColumn = 4

// FullHelp returns bindings in columns for the help overlay.
func (km *KeyMap) FullHelp() [][]key.Binding {
	all := km.bindings()
	if len(all) == 0 {
		return nil
	}
	var cols [][]key.Binding
	for len(all) > 0 {
		n := fullHelpColumn
		if n > len(all) {
			n = len(all)
		}
		cols = append(cols, all[:n])
		all = all[n:]
	}
	return cols
}

// send wraps a message in a command.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// registerDefaultKeybinds binds the calculator controls.
func registerDefaultKeybinds(reg *KeybindRegistry) {
	reg.BindWithDesc("s", send(ToggleTimerMsg{}), "start/pause")
	reg.Bind("space", send(ToggleTimerMsg{}))
	reg.BindWithDesc("r", send(ResetMsg{}), "reset")

	addKeys := []string{"1", "2", "3"}
	subKeys := []string{"!", "@", "#"}
	for i, d := range calculator.Denominations() {
		reg.BindWithDesc(addKeys[i], send(AddMsg{Amount: d}), "add $"+strconv.Itoa(int(d)))
	}
	for i, d := range calculator.Denominations() {
		reg.BindWithDesc(subKeys[i], send(SubtractMsg{Amount: d}), "subtract $"+strconv.Itoa(int(d)))
	}

	reg.BindWithDescForVariants("m", send(ToggleMuteMsg{}), "mute", []calculator.Variant{calculator.VariantTracked})
	reg.BindWithDesc("l", send(ToggleActivityMsg{}), "activity")
	reg.BindWithDesc("?", send(ShowHelpMsg{}), "help")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
}
