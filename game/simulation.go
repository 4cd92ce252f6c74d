package game

import (
	"github.com/meghashyamc/swingpong/geometry"
	"github.com/meghashyamc/swingpong/logger"
)

// BallState is the ball's track coordinate and its per-tick displacement.
// The sign of Velocity is the direction of travel.
type BallState struct {
	Position float64
	Velocity float64
}

// Tick reports what happened during the most recent Update.
type Tick struct {
	Number     int
	Position   float64
	Velocity   float64
	Swung      bool
	Hit        bool
	JustTiming bool
	Continues  bool
}

// SwingConsumer is satisfied by *SwingSignal.
type SwingConsumer interface {
	Consume() bool
}

type Simulation struct {
	ball        BallState
	paddles     geometry.Paddles
	boost       float64
	timingBonus bool
	last        Tick
	logger      logger.Logger
}

func NewSimulation(settings Settings, log logger.Logger) *Simulation {
	return &Simulation{
		ball: BallState{
			Position: settings.InitialPosition,
			Velocity: settings.InitialVelocity,
		},
		paddles:     geometry.NewPaddles(settings.HalfPaddle),
		boost:       settings.JustTimingBoost,
		timingBonus: settings.TimingBonus,
		logger:      log,
	}
}

// Update advances the ball by one tick and applies the hit rule. It returns
// false once the ball has left the track.
func (s *Simulation) Update(swing SwingConsumer) bool {
	s.ball.Position += s.ball.Velocity

	// The flag is consumed on every tick, hit or miss.
	swung := swing.Consume()
	hit := swung && s.paddles.InHitZone(s.ball.Position)

	justTiming := false
	if hit {
		if s.timingBonus {
			justTiming = s.StrikeBack()
		} else {
			s.ball.Velocity *= -1.0
		}
		s.logger.Debug("ball hit", "position", s.ball.Position, "velocity", s.ball.Velocity, "justTiming", justTiming)
	}

	continues := !s.paddles.OutOfBounds(s.ball.Position)

	s.last = Tick{
		Number:     s.last.Number + 1,
		Position:   s.ball.Position,
		Velocity:   s.ball.Velocity,
		Swung:      swung,
		Hit:        hit,
		JustTiming: justTiming,
		Continues:  continues,
	}

	return continues
}

// StrikeBack reverses the ball, speeding it up when the hit landed within
// half a hit zone of the nearer paddle's center. It reports whether the
// speed bonus applied.
func (s *Simulation) StrikeBack() bool {
	justTiming := s.paddles.IsJustTiming(s.ball.Position)

	factor := 1.0
	if justTiming {
		factor = s.boost
	}
	s.ball.Velocity *= -1.0 * factor

	return justTiming
}

func (s *Simulation) Ball() BallState {
	return s.ball
}

func (s *Simulation) LastTick() Tick {
	return s.last
}
