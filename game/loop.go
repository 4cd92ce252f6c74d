package game

import (
	"context"
	"time"

	"github.com/meghashyamc/swingpong/display"
	"github.com/meghashyamc/swingpong/logger"
)

// TickHook observes every tick that keeps the round alive, after rendering.
type TickHook func(Tick)

// Loop runs one round: update, render, hooks, pace.
type Loop struct {
	sim     *Simulation
	signal  *SwingSignal
	display display.Display
	clock   Clock
	tick    time.Duration
	hooks   []TickHook
	logger  logger.Logger
}

func NewLoop(sim *Simulation, signal *SwingSignal, disp display.Display, clock Clock, tick time.Duration, log logger.Logger) *Loop {
	return &Loop{
		sim:     sim,
		signal:  signal,
		display: disp,
		clock:   clock,
		tick:    tick,
		logger:  log,
	}
}

func (l *Loop) AddHook(hook TickHook) {
	l.hooks = append(l.hooks, hook)
}

// Run plays the round until the ball leaves the track, then reports
// game over. A cancelled ctx stops the round early without a game over.
func (l *Loop) Run(ctx context.Context) error {
	pacer := NewPacer(l.clock, l.tick)
	l.logger.Info("round started", "position", l.sim.Ball().Position, "velocity", l.sim.Ball().Velocity, "tick", l.tick)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("round cancelled", "ticks", l.sim.LastTick().Number)
			return nil
		default:
		}

		if !l.sim.Update(l.signal) {
			break
		}

		l.display.Render(l.sim.Ball().Position)

		tick := l.sim.LastTick()
		for _, hook := range l.hooks {
			hook(tick)
		}

		pacer.AdvanceAndWait()
	}

	last := l.sim.LastTick()
	l.logger.Info("game over", "ticks", last.Number, "position", last.Position)
	l.display.GameOver()

	return nil
}
