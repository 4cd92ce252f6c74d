// Package audio plays a short tone when the ball is struck.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/meghashyamc/swingpong/logger"
)

const (
	sampleRate     = beep.SampleRate(44100)
	hitDuration    = 50 * time.Millisecond
	hitFreq        = 880.0
	justTimingFreq = 1320.0
)

// HitCue is safe for concurrent use. Until Initialize succeeds every Play
// is a no-op, so the game runs silently without an audio device.
type HitCue struct {
	mu          sync.Mutex
	initialized bool
	logger      logger.Logger
}

func NewHitCue(log logger.Logger) *HitCue {
	return &HitCue{logger: log}
}

func (c *HitCue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

func (c *HitCue) Play(justTiming bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	tone, err := hitTone(justTiming)
	if err != nil {
		c.logger.Warn("failed to build hit tone", "err", err)
		return
	}
	speaker.Play(tone)
}

func (c *HitCue) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

// hitTone is a short sine blip, pitched up for a just-timing hit.
func hitTone(justTiming bool) (beep.Streamer, error) {
	freq := hitFreq
	if justTiming {
		freq = justTimingFreq
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(hitDuration), sine), nil
}
