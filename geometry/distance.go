package geometry

import (
	"math"
)

// DistanceToPaddle returns how far x is from the center of the nearer paddle.
// The track midpoint counts as the right side.
func DistanceToPaddle(x float64) float64 {
	if x < Midpoint {
		return math.Abs(x - LeftCenter)
	}
	return math.Abs(x - RightCenter)
}

// Column maps a track coordinate to a character cell on a track of the
// given width, rounding half away from zero.
func Column(x float64, width int) int {
	return int(math.Round(float64(width) * x))
}
