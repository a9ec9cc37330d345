package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvadeStaysInsideBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	sizes := [][2]int{{80, 24}, {200, 60}, {40, 10}, {13, 13}}
	const padding = 6.0
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		halfW, halfH := EvasionBounds(w, h, padding)
		for i := 0; i < 500; i++ {
			off := Evade(rng, w, h, padding)
			require.LessOrEqual(t, off.X, halfW)
			require.GreaterOrEqual(t, off.X, -halfW)
			require.LessOrEqual(t, off.Y, halfH)
			require.GreaterOrEqual(t, off.Y, -halfH)
		}
	}
}

func TestEvasionBoundsClampAtZero(t *testing.T) {
	halfW, halfH := EvasionBounds(8, 4, 6)
	require.Zero(t, halfW)
	require.Zero(t, halfH)

	off := Evade(&seqRand{vals: []float64{0.99}}, 8, 4, 6)
	require.Equal(t, Offset{}, off)
}

func TestEvadeExtremes(t *testing.T) {
	off := Evade(&seqRand{vals: []float64{0, 0}}, 100, 50, 10)
	require.Equal(t, Offset{X: -40, Y: -15}, off)
}
