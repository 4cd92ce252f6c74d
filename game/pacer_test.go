package game

import (
	"testing"
	"time"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestPacer_SleepsUntilDeadline(t *testing.T) {
	clock := newFakeClock()
	start := clock.Now()
	tick := 16_666_667 * time.Nanosecond
	pacer := NewPacer(clock, tick)

	clock.advance(4 * time.Millisecond) // work done during the tick
	pacer.AdvanceAndWait()

	if len(clock.sleeps) != 1 {
		t.Fatalf("Expected 1 sleep, got %d", len(clock.sleeps))
	}
	if want := tick - 4*time.Millisecond; clock.sleeps[0] != want {
		t.Errorf("Expected sleep of %v, got %v", want, clock.sleeps[0])
	}
	if !clock.Now().Equal(start.Add(tick)) {
		t.Errorf("Expected to wake at %v, got %v", start.Add(tick), clock.Now())
	}
}

func TestPacer_DeadlineAccumulatesWithoutDrift(t *testing.T) {
	clock := newFakeClock()
	start := clock.Now()
	tick := 16_666_667 * time.Nanosecond
	pacer := NewPacer(clock, tick)

	for i := 0; i < 600; i++ {
		clock.advance(time.Duration(i%7) * time.Millisecond)
		pacer.AdvanceAndWait()
	}

	if want := start.Add(600 * tick); !pacer.deadline.Equal(want) {
		t.Errorf("Expected deadline %v, got %v", want, pacer.deadline)
	}
	if !clock.Now().Equal(pacer.deadline) {
		t.Errorf("Expected clock to sit on the deadline, got %v vs %v", clock.Now(), pacer.deadline)
	}
}

func TestPacer_OverrunDoesNotSleep(t *testing.T) {
	clock := newFakeClock()
	tick := 10 * time.Millisecond
	pacer := NewPacer(clock, tick)

	// One tick took three tick durations.
	clock.advance(3 * tick)

	pacer.AdvanceAndWait() // deadline +1 tick, already past
	pacer.AdvanceAndWait() // deadline +2 ticks, already past
	pacer.AdvanceAndWait() // deadline +3 ticks, exactly now
	if len(clock.sleeps) != 0 {
		t.Fatalf("Expected no sleeps while behind, got %v", clock.sleeps)
	}

	pacer.AdvanceAndWait()
	if len(clock.sleeps) != 1 || clock.sleeps[0] != tick {
		t.Errorf("Expected a single full tick sleep once caught up, got %v", clock.sleeps)
	}
}

func TestSystemClock_Sleep(t *testing.T) {
	start := SystemClock.Now()
	SystemClock.Sleep(2 * time.Millisecond)

	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("Expected to sleep at least 2ms, slept %v", elapsed)
	}
}
