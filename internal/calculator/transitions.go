package calculator

// Start moves Stopped to Running.
func (c *Calculator) Start() Effects {
	if c.state.Running {
		return nil
	}
	c.state.Running = true
	return Effects{EffectStartTimer}
}

// Pause moves Running to Stopped.
func (c *Calculator) Pause() Effects {
	if !c.state.Running {
		return nil
	}
	c.state.Running = false
	return Effects{EffectStopTimer}
}

// Toggle is the start/pause button.
func (c *Calculator) Toggle() Effects {
	if c.state.Running {
		return c.Pause()
	}
	return c.Start()
}

// Reset stops the timer and zeroes the balance and elapsed counter from any
// state. Usage counts survive a reset.
func (c *Calculator) Reset() Effects {
	c.state.Running = false
	c.state.ElapsedSeconds = 0
	c.state.Balance = 0
	return Effects{EffectStopTimer}
}

// Tick advances the elapsed counter and applies the tick rule. A tick that
// arrives while stopped is ignored.
func (c *Calculator) Tick() Effects {
	if !c.state.Running {
		return nil
	}
	c.state.ElapsedSeconds++
	c.state.Balance += TickDelta(c.variant, c.state.ElapsedSeconds)
	return c.feedback()
}

// Add credits d to the balance. Amounts other than the three
// denominations are ignored.
func (c *Calculator) Add(d Denomination) Effects {
	if !d.Valid() {
		return nil
	}
	c.state.Balance += int(d)
	if c.state.AddCounts != nil {
		c.state.AddCounts[d]++
	}
	return c.feedback()
}

// Subtract debits d from the balance. Amounts other than the three
// denominations are ignored.
func (c *Calculator) Subtract(d Denomination) Effects {
	if !d.Valid() {
		return nil
	}
	c.state.Balance -= int(d)
	if c.state.SubtractCounts != nil {
		c.state.SubtractCounts[d]++
	}
	return c.feedback()
}

// ToggleMute flips the mute flag and returns the new value. VariantClassic
// has no mute control and always reports false.
func (c *Calculator) ToggleMute() bool {
	if c.variant != VariantTracked {
		return false
	}
	c.state.Muted = !c.state.Muted
	return c.state.Muted
}

// SetMuted forces the mute flag (VariantTracked only).
func (c *Calculator) SetMuted(muted bool) {
	if c.variant == VariantTracked {
		c.state.Muted = muted
	}
}

// ClearPulse ends the pulse unconditionally; overlapping pulses are not
// tracked.
func (c *Calculator) ClearPulse() {
	c.state.Animating = false
}

// feedback sets the pulse and returns the effects of a balance change.
func (c *Calculator) feedback() Effects {
	c.state.Animating = true
	if c.state.Muted {
		return Effects{EffectPulse}
	}
	return Effects{EffectPlaySound, EffectPulse}
}
