// Package input turns player events into swings.
package input

import (
	"context"
	"errors"
)

// ErrQuit is returned by a Source when the player asks to leave the round.
var ErrQuit = errors.New("player quit")

// Signal receives swings. Sources only ever set it; the simulation clears it.
type Signal interface {
	Swing()
}

// Source delivers discrete swing events until ctx is cancelled or the
// underlying stream ends.
type Source interface {
	Run(ctx context.Context, signal Signal) error
}
