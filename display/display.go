// Package display paints the ball's position once per tick.
package display

import (
	"strings"

	"github.com/meghashyamc/swingpong/geometry"
)

const (
	ballMarker  = '@'
	boundMarker = '║'
	emptyCell   = ' '
)

const GameOverMessage = "Game Over"

// Display receives the ball position every tick. Render runs inside the
// loop, so it must return promptly.
type Display interface {
	Render(position float64)
	GameOver()
}

// Line draws the track as one row: a leading space, a bound marker, one
// cell per column, and a closing bound marker. A ball outside columns
// [0, columns) is not drawn.
func Line(position float64, columns int) string {
	ball := geometry.Column(position, columns)

	var b strings.Builder
	b.Grow(columns + 8)
	b.WriteRune(emptyCell)
	b.WriteRune(boundMarker)
	for i := 0; i < columns; i++ {
		if i == ball {
			b.WriteRune(ballMarker)
		} else {
			b.WriteRune(emptyCell)
		}
	}
	b.WriteRune(boundMarker)

	return b.String()
}
