package card

// Offset is a displacement from a control's natural position, in viewport
// cells.
type Offset struct {
	X, Y float64
}

// Rand is the randomness source used for evasion. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Viewport reports the current drawable size.
type Viewport interface {
	Size() (width, height int)
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (int, int)

func (f ViewportFunc) Size() (int, int) { return f() }

// EvasionBounds returns the half-widths of the window the offset is drawn
// from. Negative bounds clamp to zero.
func EvasionBounds(width, height int, padding float64) (halfW, halfH float64) {
	halfW = float64(width)/2 - padding
	halfH = float64(height)/2 - padding
	if halfW < 0 {
		halfW = 0
	}
	if halfH < 0 {
		halfH = 0
	}
	return halfW, halfH
}

// Evade draws a new offset uniformly from [-halfW, halfW) x [-halfH, halfH).
// Nothing prevents the result from overlapping other controls.
func Evade(r Rand, width, height int, padding float64) Offset {
	halfW, halfH := EvasionBounds(width, height, padding)
	return Offset{
		X: (r.Float64()*2 - 1) * halfW,
		Y: (r.Float64()*2 - 1) * halfH,
	}
}
