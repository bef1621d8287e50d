package trace

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCapacity is the number of events kept when none is given.
const DefaultCapacity = 20

// Recorder keeps the most recent events of one session and forwards each
// one to the exporter, if any.
type Recorder struct {
	mu        sync.RWMutex
	sessionID string
	events    []Event // Oldest first, at most capacity
	capacity  int
	exporter  *OTLPExporter
	now       func() time.Time
}

// NewRecorder creates a recorder. A nil exporter records locally only.
func NewRecorder(capacity int, exporter *OTLPExporter) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{
		sessionID: NewSessionID(),
		events:    make([]Event, 0, capacity),
		capacity:  capacity,
		exporter:  exporter,
		now:       time.Now,
	}
}

// SessionID returns the ID stamped on every event.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Record stamps and stores ev, evicting the oldest event when full.
func (r *Recorder) Record(ev Event) Event {
	r.mu.Lock()
	ev.SessionID = r.sessionID
	if ev.Timestamp.IsZero() {
		ev.Timestamp = r.now()
	}
	if len(r.events) == r.capacity {
		copy(r.events, r.events[1:])
		r.events = r.events[:len(r.events)-1]
	}
	r.events = append(r.events, ev)
	r.mu.Unlock()

	if err := r.exporter.ExportEvent(context.Background(), ev); err != nil {
		log.Printf("trace: export %s failed: %v", ev.Type, err)
	}
	return ev
}

// Recent returns up to n events, newest first. n <= 0 returns all.
func (r *Recorder) Recent(n int) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 || n > len(r.events) {
		n = len(r.events)
	}
	out := make([]Event, 0, n)
	for i := len(r.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.events[i])
	}
	return out
}

// Len returns the number of stored events.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// Close flushes the exporter.
func (r *Recorder) Close(ctx context.Context) error {
	return r.exporter.Shutdown(ctx)
}
