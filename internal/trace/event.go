package trace

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// EventType identifies the calculator transition that was recorded
type EventType string

const (
	EventStart    EventType = "start"    // Timer started
	EventPause    EventType = "pause"    // Timer paused
	EventReset    EventType = "reset"    // Balance and elapsed zeroed
	EventTick     EventType = "tick"     // One timer tick applied
	EventAdd      EventType = "add"      // Manual credit
	EventSubtract EventType = "subtract" // Manual debit
	EventMute     EventType = "mute"     // Mute toggled
)

// Event is one recorded transition with the state it produced
type Event struct {
	SessionID string    `json:"session_id"` // Shared by every event of one program run
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Balance   int       `json:"balance"`
	Elapsed   int       `json:"elapsed"`
	Amount    int       `json:"amount,omitempty"` // Denomination for add/subtract, delta for tick
	Muted     bool      `json:"muted"`
}

// Attributes flattens the event for exporters.
func (e Event) Attributes() map[string]string {
	attrs := map[string]string{
		"balance": strconv.Itoa(e.Balance),
		"elapsed": strconv.Itoa(e.Elapsed),
		"muted":   strconv.FormatBool(e.Muted),
	}
	if e.Amount != 0 {
		attrs["amount"] = strconv.Itoa(e.Amount)
	}
	return attrs
}

// NewSessionID generates a random 16-byte ID as hex string (32 characters).
// It doubles as the OTLP trace ID.
func NewSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
