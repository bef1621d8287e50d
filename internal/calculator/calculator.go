// Package calculator holds the savings calculator state and its transitions.
//
// Transitions are plain method calls that mutate State and return the
// effects they request (timer control, sound, pulse). Nothing here touches
// a terminal, a speaker or a clock, so the whole state machine can be
// driven directly from tests.
package calculator

import (
	"fmt"
	"time"
)

// Fixed cadences of the widget.
const (
	TickInterval   = time.Second
	PulseDuration  = 300 * time.Millisecond
	RippleDuration = 600 * time.Millisecond
)

// Tick adjustments.
const (
	TickGain = 50
	TickLoss = 30
)

// Variant selects the rule set.
type Variant int

const (
	// VariantClassic loses on every 2nd second and has no mute or stats.
	VariantClassic Variant = 1
	// VariantTracked loses on every 3rd second, supports mute and keeps
	// per-denomination usage counts.
	VariantTracked Variant = 2
)

func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantTracked:
		return "tracked"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantClassic || v == VariantTracked
}

// lossPeriod is the elapsed-seconds divisor that turns a tick into a loss.
func (v Variant) lossPeriod() int {
	if v == VariantTracked {
		return 3
	}
	return 2
}

// Denomination is one of the fixed manual adjustment amounts.
type Denomination int

const (
	Ten     Denomination = 10
	Fifty   Denomination = 50
	Hundred Denomination = 100
)

// Denominations returns the adjustment amounts in ascending order.
func Denominations() []Denomination {
	return []Denomination{Ten, Fifty, Hundred}
}

// Valid reports whether d is one of Ten, Fifty or Hundred.
func (d Denomination) Valid() bool {
	return d == Ten || d == Fifty || d == Hundred
}

// ParseDenomination converts a raw amount into a Denomination.
func ParseDenomination(amount int) (Denomination, error) {
	d := Denomination(amount)
	if !d.Valid() {
		return 0, fmt.Errorf("unsupported denomination %d (want 10, 50 or 100)", amount)
	}
	return d, nil
}

// TickDelta returns the balance change applied by the tick that brings the
// elapsed counter to elapsed.
func TickDelta(v Variant, elapsed int) int {
	if elapsed%v.lossPeriod() == 0 {
		return -TickLoss
	}
	return TickGain
}

// ExpectedBalance returns the balance reached after n ticks from a reset.
func ExpectedBalance(v Variant, n int) int {
	total := 0
	for k := 1; k <= n; k++ {
		total += TickDelta(v, k)
	}
	return total
}

// State is the full widget state. AddCounts and SubtractCounts are only
// populated for VariantTracked.
type State struct {
	Balance        int
	Running        bool
	ElapsedSeconds int
	Muted          bool
	AddCounts      map[Denomination]int
	SubtractCounts map[Denomination]int
	Animating      bool
}

// Calculator owns one State. It is not safe for concurrent use; the UI
// event loop is the only caller.
type Calculator struct {
	variant Variant
	state   State
}

// New creates a stopped calculator with a zero balance.
// Unknown variants fall back to VariantClassic.
func New(v Variant) *Calculator {
	if !v.Valid() {
		v = VariantClassic
	}
	c := &Calculator{variant: v}
	if v == VariantTracked {
		c.state.AddCounts = make(map[Denomination]int, 3)
		c.state.SubtractCounts = make(map[Denomination]int, 3)
		for _, d := range Denominations() {
			c.state.AddCounts[d] = 0
			c.state.SubtractCounts[d] = 0
		}
	}
	return c
}

// Variant returns the rule set in use.
func (c *Calculator) Variant() Variant { return c.variant }

// Balance returns the current balance.
func (c *Calculator) Balance() int { return c.state.Balance }

// Running reports whether the tick schedule is active.
func (c *Calculator) Running() bool { return c.state.Running }

// ElapsedSeconds returns the tick counter.
func (c *Calculator) ElapsedSeconds() int { return c.state.ElapsedSeconds }

// Muted reports whether sound effects are suppressed.
func (c *Calculator) Muted() bool { return c.state.Muted }

// Animating reports whether the balance pulse is showing.
func (c *Calculator) Animating() bool { return c.state.Animating }

// Snapshot returns a copy of the state that shares no maps with c.
func (c *Calculator) Snapshot() State {
	s := c.state
	s.AddCounts = copyCounts(c.state.AddCounts)
	s.SubtractCounts = copyCounts(c.state.SubtractCounts)
	return s
}

func copyCounts(m map[Denomination]int) map[Denomination]int {
	if m == nil {
		return nil
	}
	out := make(map[Denomination]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
