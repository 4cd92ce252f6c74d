package geometry

// Track coordinates: the left paddle is centered on 0.0 and the right on 1.0.
const (
	LeftCenter  = 0.0
	RightCenter = 1.0
	Midpoint    = (LeftCenter + RightCenter) / 2
)

type Paddles struct {
	Half float64 // half paddle width as a fraction of the track
}

func NewPaddles(half float64) Paddles {
	return Paddles{Half: half}
}

// InLeftZone reports x ∈ [-Half, Half).
func (p Paddles) InLeftZone(x float64) bool {
	return x >= LeftCenter-p.Half && x < LeftCenter+p.Half
}

// InRightZone reports x ∈ [1-Half, 1+Half).
func (p Paddles) InRightZone(x float64) bool {
	return x >= RightCenter-p.Half && x < RightCenter+p.Half
}

func (p Paddles) InHitZone(x float64) bool {
	return p.InLeftZone(x) || p.InRightZone(x)
}

// OutOfBounds reports whether the ball has passed beyond either paddle.
func (p Paddles) OutOfBounds(x float64) bool {
	return x < LeftCenter-p.Half || x > RightCenter+p.Half
}

// IsJustTiming reports whether x is within half a hit zone of the nearer
// paddle's center.
func (p Paddles) IsJustTiming(x float64) bool {
	return DistanceToPaddle(x) < p.Half/2
}
