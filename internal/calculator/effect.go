package calculator

// Effect is a side effect requested by a transition. The caller performs it.
type Effect int

const (
	// EffectStartTimer asks for one Tick per TickInterval.
	EffectStartTimer Effect = iota + 1
	// EffectStopTimer cancels the tick schedule. Ticks already in flight
	// must be dropped by the caller.
	EffectStopTimer
	// EffectPlaySound plays the feedback clip once.
	EffectPlaySound
	// EffectPulse means Animating was set; ClearPulse is due after PulseDuration.
	EffectPulse
)

func (e Effect) String() string {
	switch e {
	case EffectStartTimer:
		return "start_timer"
	case EffectStopTimer:
		return "stop_timer"
	case EffectPlaySound:
		return "play_sound"
	case EffectPulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// Effects is the ordered list returned by a transition.
type Effects []Effect

// Has reports whether e was requested.
func (es Effects) Has(e Effect) bool {
	for _, x := range es {
		if x == e {
			return true
		}
	}
	return false
}
