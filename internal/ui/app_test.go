package ui

import (
	"errors"
	"testing"
	"time"

	"savings/internal/calculator"
	"savings/internal/sound"
	"savings/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestApp returns an app whose timed commands fire immediately.
func newTestApp(v calculator.Variant) (*AppModel, *sound.Spy) {
	spy := &sound.Spy{}
	a := NewAppModel(calculator.New(v), spy, trace.NewRecorder(10, nil))
	a.now = func() time.Time { return testNow }
	a.after = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		return func() tea.Msg { return fn(testNow.Add(d)) }
	}
	return a, spy
}

// drain runs cmd, flattening batches, and returns the non-nil messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// press sends a key and feeds the message its binding produces back in.
// It returns the messages produced by handling that message.
func press(a *AppModel, key string) []tea.Msg {
	var out []tea.Msg
	for _, msg := range drain(a.update(keyMsg(key))) {
		out = append(out, drain(a.update(msg))...)
	}
	return out
}

func findTick(msgs []tea.Msg) (tickMsg, bool) {
	for _, m := range msgs {
		if tm, ok := m.(tickMsg); ok {
			return tm, true
		}
	}
	return tickMsg{}, false
}

func has[T any](msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(T); ok {
			return true
		}
	}
	return false
}

// startAndTick starts the timer and lets n ticks fire.
func startAndTick(t *testing.T, a *AppModel, n int) {
	t.Helper()
	tick, ok := findTick(press(a, "s"))
	require.True(t, ok, "start should schedule a tick")
	for i := 0; i < n; i++ {
		tick, ok = findTick(drain(a.update(tick)))
		require.True(t, ok, "tick %d should schedule the next one", i+1)
	}
}

func TestApp_StartTicks(t *testing.T) {
	a, spy := newTestApp(calculator.VariantClassic)
	startAndTick(t, a, 5)

	assert.True(t, a.Calc.Running())
	assert.Equal(t, 5, a.Calc.ElapsedSeconds())
	assert.Equal(t, calculator.ExpectedBalance(calculator.VariantClassic, 5), a.Calc.Balance())
	assert.Equal(t, 5, spy.Calls(), "one sound per tick")
}

func TestApp_TrackedTickRule(t *testing.T) {
	a, _ := newTestApp(calculator.VariantTracked)
	startAndTick(t, a, 6)
	assert.Equal(t, 4*50-2*30, a.Calc.Balance())
}

func TestApp_PauseDropsTickInFlight(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	stale, ok := findTick(press(a, "s"))
	require.True(t, ok)

	press(a, "s") // pause
	require.False(t, a.Calc.Running())

	assert.Nil(t, a.update(stale))
	assert.Equal(t, 0, a.Calc.ElapsedSeconds())

	// Restarting must not revive the old schedule.
	fresh, ok := findTick(press(a, "s"))
	require.True(t, ok)
	assert.Nil(t, a.update(stale))
	assert.Equal(t, 0, a.Calc.ElapsedSeconds())

	drain(a.update(fresh))
	assert.Equal(t, 1, a.Calc.ElapsedSeconds())
}

func TestApp_ScenarioStartWaitReset(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	startAndTick(t, a, 3)
	assert.Equal(t, 3, a.Calc.ElapsedSeconds())
	assert.Equal(t, 70, a.Calc.Balance())

	press(a, "r")
	assert.Equal(t, 0, a.Calc.Balance())
	assert.Equal(t, 0, a.Calc.ElapsedSeconds())
	assert.False(t, a.Calc.Running())
}

func TestApp_ResetCancelsTimer(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	stale, ok := findTick(press(a, "s"))
	require.True(t, ok)

	press(a, "r")
	assert.Nil(t, a.update(stale))
	assert.Equal(t, 0, a.Calc.ElapsedSeconds())
}

func TestApp_ResetKeepsCounters(t *testing.T) {
	a, _ := newTestApp(calculator.VariantTracked)
	press(a, "2")
	press(a, "#")
	press(a, "r")

	s := a.Calc.Snapshot()
	assert.Equal(t, 0, s.Balance)
	assert.Equal(t, 1, s.AddCounts[calculator.Fifty])
	assert.Equal(t, 1, s.SubtractCounts[calculator.Hundred])
}

func TestApp_AddSubtract(t *testing.T) {
	a, spy := newTestApp(calculator.VariantTracked)

	msgs := press(a, "2")
	assert.Equal(t, 50, a.Calc.Balance())
	assert.Equal(t, 1, a.Calc.Snapshot().AddCounts[calculator.Fifty])
	assert.Equal(t, 0, a.Calc.Snapshot().AddCounts[calculator.Ten])
	assert.Equal(t, 1, spy.Calls())
	assert.True(t, has[pulseEndMsg](msgs))

	press(a, "!")
	assert.Equal(t, 40, a.Calc.Balance())
	assert.Equal(t, 2, spy.Calls())
}

func TestApp_PulseClears(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	drain(a.update(AddMsg{Amount: calculator.Ten}))
	require.True(t, a.Calc.Animating())

	a.update(pulseEndMsg{})
	assert.False(t, a.Calc.Animating())
}

func TestApp_MuteSuppressesSound(t *testing.T) {
	a, spy := newTestApp(calculator.VariantTracked)
	press(a, "m")
	require.True(t, a.Calc.Muted())

	press(a, "1")
	press(a, "@")
	startAndTick(t, a, 3)

	assert.Equal(t, 0, spy.Calls())
	assert.True(t, a.Calc.Animating(), "pulse still runs while muted")

	press(a, "m")
	press(a, "1")
	assert.Equal(t, 1, spy.Calls())
}

func TestApp_MuteKeyIgnoredInClassic(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	assert.Nil(t, a.update(keyMsg("m")))
	assert.Nil(t, a.update(ToggleMuteMsg{}))
	assert.False(t, a.Calc.Muted())
}

func TestApp_SoundFailureIsSwallowed(t *testing.T) {
	a, spy := newTestApp(calculator.VariantClassic)
	spy.Err = errors.New("autoplay blocked")

	msgs := press(a, "3")
	assert.Equal(t, 100, a.Calc.Balance())
	assert.Equal(t, 1, spy.Calls())
	for _, m := range msgs {
		_, isErr := m.(error)
		assert.False(t, isErr, "sound errors must not surface as messages")
	}
}

func TestApp_RecordsActivity(t *testing.T) {
	a, _ := newTestApp(calculator.VariantTracked)
	press(a, "2")
	startAndTick(t, a, 1)

	recent := a.Recorder.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, trace.EventTick, recent[0].Type)
	assert.Equal(t, 50, recent[0].Amount)
	assert.Equal(t, 100, recent[0].Balance)
	assert.Equal(t, trace.EventStart, recent[1].Type)
	assert.Equal(t, trace.EventAdd, recent[2].Type)
	assert.Equal(t, 50, recent[2].Amount)
}

func TestApp_CtrlCQuits(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	msgs := drain(a.update(keyMsg("ctrl+c")))
	assert.True(t, has[tea.QuitMsg](msgs))
}

func TestApp_WindowSize(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	model, _ := a.AsTeaModel().Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.NotNil(t, model)
	assert.Equal(t, 120, a.width)
	assert.Equal(t, 40, a.height)
}

func findButton(t *testing.T, a *AppModel, id string) placedButton {
	t.Helper()
	for _, p := range a.layout() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("button %q not in layout", id)
	return placedButton{}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestApp_ClickAddButton(t *testing.T) {
	a, spy := newTestApp(calculator.VariantTracked)
	p := findButton(t, a, "add-50")

	msgs := drain(a.update(click(p.X+3, p.Y+1)))
	assert.Equal(t, 50, a.Calc.Balance())
	assert.Equal(t, 1, a.Calc.Snapshot().AddCounts[calculator.Fifty])
	assert.Equal(t, 1, spy.Calls())

	require.Len(t, a.ripples, 1)
	r := a.ripples[0]
	assert.Equal(t, "add-50", r.ButtonID)
	assert.Equal(t, 3, r.OffsetX)
	assert.Equal(t, 1, r.OffsetY)

	var frame rippleFrameMsg
	for _, m := range msgs {
		if f, ok := m.(rippleFrameMsg); ok {
			frame = f
		}
	}
	require.Equal(t, r.ID, frame.id)

	// First frame keeps the ripple alive and schedules another.
	next := drain(a.update(frame))
	assert.True(t, has[rippleFrameMsg](next))
	require.Len(t, a.ripples, 1)
	assert.Equal(t, rippleFrameInterval, a.ripples[0].Age)

	// Past its lifetime it removes itself.
	assert.Nil(t, a.update(rippleFrameMsg{id: r.ID, at: testNow.Add(calculator.RippleDuration)}))
	assert.Empty(t, a.ripples)
}

func TestApp_ClickTimerButton(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	p := findButton(t, a, "timer")

	msgs := drain(a.update(click(p.X, p.Y)))
	assert.True(t, a.Calc.Running())
	_, ok := findTick(msgs)
	assert.True(t, ok)
	assert.Contains(t, a.render(), "Pause")
}

func TestApp_ClickOutsideButtons(t *testing.T) {
	a, spy := newTestApp(calculator.VariantClassic)
	assert.Nil(t, a.update(click(0, 0)))
	assert.Nil(t, a.update(click(500, 500)))
	assert.Equal(t, 0, a.Calc.Balance())
	assert.Equal(t, 0, spy.Calls())
	assert.Empty(t, a.ripples)
}

func TestApp_MouseReleaseIgnored(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	p := findButton(t, a, "add-10")
	msg := tea.MouseMsg{X: p.X + 1, Y: p.Y + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	assert.Nil(t, a.update(msg))
	assert.Equal(t, 0, a.Calc.Balance())
}

func TestApp_ClickMuteButton(t *testing.T) {
	a, _ := newTestApp(calculator.VariantTracked)
	p := findButton(t, a, "mute")
	a.update(click(p.X+1, p.Y+1))
	assert.True(t, a.Calc.Muted())
	assert.Contains(t, a.render(), "Unmute")
}

func TestApp_ViewClassic(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	out := a.AsTeaModel().View()

	assert.Contains(t, out, "Money Savings Calculator")
	assert.Contains(t, out, "Time Running: 0 seconds")
	assert.Contains(t, out, "$0")
	assert.Contains(t, out, "Start")
	assert.Contains(t, out, "Reset")
	assert.Contains(t, out, "Add $100")
	assert.Contains(t, out, "Subtract $10")
	assert.NotContains(t, out, "Mute")
	assert.NotContains(t, out, "Usage")
}

func TestApp_ViewTracked(t *testing.T) {
	a, _ := newTestApp(calculator.VariantTracked)
	press(a, "!")
	out := a.render()

	assert.Contains(t, out, "$-10")
	assert.Contains(t, out, "Mute")
	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "subtracted")
}

func TestApp_ActivityToggle(t *testing.T) {
	a, _ := newTestApp(calculator.VariantClassic)
	assert.NotContains(t, a.render(), "Activity")

	press(a, "l")
	assert.True(t, a.ShowActivity)
	out := a.render()
	assert.Contains(t, out, "Activity")
	assert.Contains(t, out, "nothing yet")

	press(a, "1")
	assert.Contains(t, a.render(), "+10   $10")
}

func TestApp_HelpOverlay(t *testing.T) {
	a, _ := newTestApp(calculator.VariantTracked)
	press(a, "?")
	require.Equal(t, 1, a.Overlays.Len())
	assert.Contains(t, a.render(), "Keys (tracked)")

	// Keys and clicks do not reach the calculator while help is open.
	press(a, "1")
	p := findButton(t, a, "add-10")
	assert.Nil(t, a.update(click(p.X+1, p.Y+1)))
	assert.Equal(t, 0, a.Calc.Balance())

	press(a, "esc")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Contains(t, a.render(), "Money Savings Calculator")
}

func TestDescribeEvent(t *testing.T) {
	assert.Equal(t, "tick     -30   $20  2s", describeEvent(trace.Event{Type: trace.EventTick, Amount: -30, Balance: 20, Elapsed: 2}))
	assert.Equal(t, "subtract -50   $-50  0s", describeEvent(trace.Event{Type: trace.EventSubtract, Amount: 50, Balance: -50}))
	assert.Equal(t, "mute     on    $0  0s", describeEvent(trace.Event{Type: trace.EventMute, Muted: true}))
}
