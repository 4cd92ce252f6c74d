package game

import (
	"fmt"
	"time"

	"github.com/meghashyamc/swingpong/config"
)

// Settings holds every tunable constant of a round. It is built once and
// never mutated.
type Settings struct {
	HalfPaddle      float64
	InitialPosition float64
	InitialVelocity float64
	JustTimingBoost float64
	TimingBonus     bool // route hits through StrikeBack
	TickDuration    time.Duration
	Columns         int
}

func DefaultSettings() Settings {
	return Settings{
		HalfPaddle:      0.2 / 2.0,
		InitialPosition: 0.0,
		InitialVelocity: 0.01,
		JustTimingBoost: 1.1,
		TimingBonus:     false,
		TickDuration:    16_666_667 * time.Nanosecond,
		Columns:         64,
	}
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		HalfPaddle:      cfg.GetHalfPaddle(),
		InitialPosition: cfg.GetInitialPosition(),
		InitialVelocity: cfg.GetInitialVelocity(),
		JustTimingBoost: cfg.GetJustTimingBoost(),
		TimingBonus:     cfg.GetTimingBonus(),
		TickDuration:    cfg.GetTickDuration(),
		Columns:         cfg.GetColumns(),
	}
}

func (s Settings) Validate() error {
	if s.HalfPaddle <= 0 {
		return fmt.Errorf("half paddle must be positive, got %v", s.HalfPaddle)
	}
	if s.InitialVelocity == 0 {
		return fmt.Errorf("initial velocity must not be zero")
	}
	if s.JustTimingBoost < 1 {
		return fmt.Errorf("just timing boost must be at least 1, got %v", s.JustTimingBoost)
	}
	if s.TickDuration <= 0 {
		return fmt.Errorf("tick duration must be positive, got %v", s.TickDuration)
	}
	if s.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", s.Columns)
	}

	return nil
}
