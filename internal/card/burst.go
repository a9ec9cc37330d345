package card

// Point is a position expressed as a fraction of the viewport.
type Point struct {
	X, Y float64
}

// Burst describes one celebratory particle effect.
type Burst struct {
	Count int
	// Spread is the cone width in degrees, centred on straight up.
	Spread float64
	Origin Point
	Colors []string
}

// DefaultBurst is the celebration fired when the question is accepted.
func DefaultBurst() Burst {
	return Burst{
		Count:  150,
		Spread: 70,
		Origin: Point{X: 0.5, Y: 0.6},
		Colors: []string{"#ff4d6d", "#ffb3c1", "#ffffff"},
	}
}
