package game

import "sync"

// SwingSignal is the flag shared between the input goroutine and the loop.
// Swings arriving between two ticks coalesce into one.
type SwingSignal struct {
	mu      sync.Mutex
	pending bool
}

func NewSwingSignal() *SwingSignal {
	return &SwingSignal{}
}

// Swing records that the player swung. Safe to call from any goroutine.
func (s *SwingSignal) Swing() {
	s.mu.Lock()
	s.pending = true
	s.mu.Unlock()
}

// Consume reports whether a swing is pending and clears it in the same
// critical section, so a concurrent Swing is either seen now or kept for
// the next tick.
func (s *SwingSignal) Consume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	swung := s.pending
	s.pending = false
	return swung
}
