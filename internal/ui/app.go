package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"savings/internal/calculator"
	"savings/internal/sound"
	"savings/internal/trace"
	"savings/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen origin of the card. View applies it as margins; hit testing uses
// the same offsets.
const (
	originX = 2
	originY = 1
)

// activityLines is how many recorded events the activity log shows.
const activityLines = 5

// AppModel is the root model: one calculator, its feedback effects and
// the view state around it.
type AppModel struct {
	Calc         *calculator.Calculator
	Player       sound.Player
	Recorder     *trace.Recorder
	Keys         *KeybindRegistry
	Overlays     OverlayStack
	ShowActivity bool

	timerGen     int // bumped on every start and stop; stale ticks are dropped
	ripples      []Ripple
	nextRippleID int
	width        int
	height       int
	now          func() time.Time
	after        scheduler
}

// NewAppModel wires a calculator to a sound player and recorder.
// A nil player is silent; a nil recorder keeps events locally.
func NewAppModel(calc *calculator.Calculator, player sound.Player, recorder *trace.Recorder) *AppModel {
	if player == nil {
		player = sound.Nop{}
	}
	if recorder == nil {
		recorder = trace.NewRecorder(0, nil)
	}
	keys := NewKeybindRegistry()
	registerDefaultKeybinds(keys)
	return &AppModel{
		Calc:     calc,
		Player:   player,
		Recorder: recorder,
		Keys:     keys,
		now:      time.Now,
		after:    tea.Tick,
	}
}

// AsTeaModel returns a tea.Model that wraps this AppModel.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.update(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.render()
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		if cmd, ok := a.Overlays.HandleKey(msg); ok {
			return cmd
		}
		return a.Keys.LookupFor(msg.String(), a.Calc.Variant())

	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return nil
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return a.click(msg.X, msg.Y)

	case ToggleTimerMsg:
		typ := trace.EventStart
		if a.Calc.Running() {
			typ = trace.EventPause
		}
		effects := a.Calc.Toggle()
		a.record(typ, 0)
		return tea.Batch(a.perform(effects)...)

	case ResetMsg:
		effects := a.Calc.Reset()
		a.record(trace.EventReset, 0)
		return tea.Batch(a.perform(effects)...)

	case AddMsg:
		effects := a.Calc.Add(msg.Amount)
		a.record(trace.EventAdd, int(msg.Amount))
		return tea.Batch(a.perform(effects)...)

	case SubtractMsg:
		effects := a.Calc.Subtract(msg.Amount)
		a.record(trace.EventSubtract, int(msg.Amount))
		return tea.Batch(a.perform(effects)...)

	case ToggleMuteMsg:
		if a.Calc.Variant() != calculator.VariantTracked {
			return nil
		}
		a.Calc.ToggleMute()
		a.record(trace.EventMute, 0)
		return nil

	case ToggleActivityMsg:
		a.ShowActivity = !a.ShowActivity
		return nil

	case ShowHelpMsg:
		if a.Overlays.Len() == 0 {
			a.Overlays.Push(Overlay{
				View:    NewHelpView(a.Keys, a.Calc.Variant()),
				Dismiss: []string{"esc", "?", "q"},
			})
		}
		return nil

	case tickMsg:
		if msg.gen != a.timerGen {
			return nil
		}
		effects := a.Calc.Tick()
		if len(effects) == 0 {
			return nil
		}
		a.record(trace.EventTick, calculator.TickDelta(a.Calc.Variant(), a.Calc.ElapsedSeconds()))
		cmds := append(a.perform(effects), a.tickCmd(a.timerGen))
		return tea.Batch(cmds...)

	case pulseEndMsg:
		a.Calc.ClearPulse()
		return nil

	case rippleFrameMsg:
		return a.advanceRipple(msg)
	}
	return nil
}

// perform turns calculator effects into commands.
func (a *AppModel) perform(effects calculator.Effects) []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e {
		case calculator.EffectStartTimer:
			a.timerGen++
			cmds = append(cmds, a.tickCmd(a.timerGen))
		case calculator.EffectStopTimer:
			a.timerGen++
		case calculator.EffectPlaySound:
			cmds = append(cmds, a.playSoundCmd())
		case calculator.EffectPulse:
			cmds = append(cmds, a.pulseCmd())
		}
	}
	return cmds
}

func (a *AppModel) record(typ trace.EventType, amount int) {
	a.Recorder.Record(trace.Event{
		Type:    typ,
		Balance: a.Calc.Balance(),
		Elapsed: a.Calc.ElapsedSeconds(),
		Amount:  amount,
		Muted:   a.Calc.Muted(),
	})
}

// layout positions the buttons below the header.
func (a *AppModel) layout() []placedButton {
	return layoutButtons(buttonRows(a.Calc), originX, originY+lipgloss.Height(a.renderHeader()))
}

// click triggers the button under (x, y), if any, and starts its ripple.
func (a *AppModel) click(x, y int) tea.Cmd {
	for _, p := range a.layout() {
		if !p.contains(x, y) {
			continue
		}
		a.nextRippleID++
		a.ripples = append(a.ripples, Ripple{
			ID:       a.nextRippleID,
			ButtonID: p.ID,
			OffsetX:  x - p.X,
			OffsetY:  y - p.Y,
			Started:  a.now(),
		})
		return tea.Batch(a.rippleFrameCmd(a.nextRippleID), a.update(p.Msg))
	}
	return nil
}

func (a *AppModel) advanceRipple(msg rippleFrameMsg) tea.Cmd {
	for i := range a.ripples {
		r := &a.ripples[i]
		if r.ID != msg.id {
			continue
		}
		r.Age = msg.at.Sub(r.Started)
		if r.expired() {
			a.ripples = append(a.ripples[:i], a.ripples[i+1:]...)
			return nil
		}
		return a.rippleFrameCmd(r.ID)
	}
	return nil
}

func formatBalance(balance int) string {
	return "$" + strconv.Itoa(balance)
}

func (a *AppModel) renderHeader() string {
	balanceStyle := Styles.Balance
	if a.Calc.Balance() < 0 {
		balanceStyle = Styles.BalanceNegative
	}
	if a.Calc.Animating() {
		balanceStyle = balanceStyle.Bold(true).Underline(true)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Money Savings Calculator"),
		"",
		Styles.Label.Render("Time Running: ")+Styles.Value.Render(strconv.Itoa(a.Calc.ElapsedSeconds()))+Styles.Label.Render(" seconds"),
		balanceStyle.Render(formatBalance(a.Calc.Balance())),
		"",
	)
}

func (a *AppModel) renderStats() string {
	s := a.Calc.Snapshot()
	lines := []string{Styles.Section.Render("Usage")}
	for _, d := range calculator.Denominations() {
		lines = append(lines, fmt.Sprintf("%-5s %s %-3d %s %d",
			formatBalance(int(d)),
			Styles.Muted.Render("added"), s.AddCounts[d],
			Styles.Muted.Render("subtracted"), s.SubtractCounts[d]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func describeEvent(ev trace.Event) string {
	var change string
	switch ev.Type {
	case trace.EventTick:
		change = fmt.Sprintf("%+d", ev.Amount)
	case trace.EventAdd:
		change = fmt.Sprintf("+%d", ev.Amount)
	case trace.EventSubtract:
		change = fmt.Sprintf("-%d", ev.Amount)
	case trace.EventMute:
		change = "on"
		if !ev.Muted {
			change = "off"
		}
	}
	return fmt.Sprintf("%-8s %-5s %s  %ds", ev.Type, change, formatBalance(ev.Balance), ev.Elapsed)
}

func (a *AppModel) renderActivity() string {
	lines := []string{Styles.Section.Render("Activity")}
	events := a.Recorder.Recent(activityLines)
	if len(events) == 0 {
		lines = append(lines, Styles.Muted.Render("nothing yet"))
	}
	maxWidth := a.width - originX
	for _, ev := range events {
		line := describeEvent(ev)
		if maxWidth > 0 {
			line = textutil.Truncate(line, maxWidth)
		}
		lines = append(lines, Styles.Muted.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *AppModel) render() string {
	if top, ok := a.Overlays.Peek(); ok {
		return top.View.View()
	}

	parts := []string{
		a.renderHeader(),
		renderButtonRows(a.layout(), a.ripples),
	}
	if a.Calc.Variant() == calculator.VariantTracked {
		parts = append(parts, "", a.renderStats())
	}
	if a.ShowActivity {
		parts = append(parts, "", a.renderActivity())
	}
	parts = append(parts, "", RenderKeybindHelp(a.Keys, a.Calc.Variant(), a.width-originX))

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.NewStyle().MarginLeft(originX).MarginTop(originY).Render(strings.TrimRight(body, "\n"))
}
