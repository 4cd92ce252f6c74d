package game

import "time"

// Clock abstracts wall time so pacing can be tested without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Pacer holds ticks to a fixed rate against an absolute deadline, so
// rounding in individual sleeps never accumulates into drift.
type Pacer struct {
	clock    Clock
	deadline time.Time
	tick     time.Duration
}

// NewPacer starts the deadline at the clock's current time.
func NewPacer(clock Clock, tick time.Duration) *Pacer {
	return &Pacer{
		clock:    clock,
		deadline: clock.Now(),
		tick:     tick,
	}
}

// AdvanceAndWait moves the deadline forward one tick and blocks until it.
// An overrun tick does not sleep and is not made up later.
func (p *Pacer) AdvanceAndWait() {
	p.deadline = p.deadline.Add(p.tick)
	if wait := p.deadline.Sub(p.clock.Now()); wait > 0 {
		p.clock.Sleep(wait)
	}
}
