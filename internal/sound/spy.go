package sound

import "sync"

// Spy is a Player that records calls instead of making sound.
type Spy struct {
	mu    sync.Mutex
	calls int
	Err   error // returned from every Play when set
}

// Play implements Player.
func (s *Spy) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.Err
}

// Calls returns how many times Play was invoked.
func (s *Spy) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
