package confetti

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/valentine/internal/card"
)

func newTestSystem() *System {
	return NewSystem(rand.New(rand.NewPCG(3, 5)), "#1e1e2e")
}

func TestFireSpawnsBurstCount(t *testing.T) {
	s := newTestSystem()
	s.Fire(card.DefaultBurst(), 80, 24)
	require.Equal(t, 150, s.Len())
	require.Equal(t, 1, s.Fired())
	for _, p := range s.Particles() {
		require.InDelta(t, 40, p.X, 1e-9)
		require.InDelta(t, 14.4, p.Y, 1e-9)
		require.Less(t, p.VY, 0.0, "launched upward")
	}
}

func TestParticlesStayInsideSpreadCone(t *testing.T) {
	s := newTestSystem()
	b := card.DefaultBurst()
	b.Spread = 20
	s.Fire(b, 100, 40)
	for _, p := range s.Particles() {
		// cos(80deg) bounds the horizontal component of a unit launch.
		vy := p.VY / cellAspect
		speedSq := p.VX*p.VX + vy*vy
		require.LessOrEqual(t, p.VX*p.VX, speedSq*0.0302)
	}
}

func TestParticlesExpire(t *testing.T) {
	s := newTestSystem()
	s.Fire(card.DefaultBurst(), 80, 24)
	for i := 0; i < 60; i++ {
		s.Step(time.Second / 60)
	}
	require.True(t, s.Active())
	s.Step(maxLife)
	require.False(t, s.Active())
	require.Empty(t, s.Cells(80, 24))
}

func TestCellsClipToGrid(t *testing.T) {
	s := newTestSystem()
	s.Fire(card.DefaultBurst(), 80, 24)
	cells := s.Cells(80, 24)
	require.NotEmpty(t, cells)
	for _, c := range cells {
		require.GreaterOrEqual(t, c.X, 0)
		require.Less(t, c.X, 80)
		require.Contains(t, []string{"#ff4d6d", "#ffb3c1", "#ffffff"}, c.Color)
	}
	require.Empty(t, s.Cells(0, 0))
}

func TestBadPaletteFallsBackToWhite(t *testing.T) {
	s := newTestSystem()
	b := card.DefaultBurst()
	b.Colors = []string{"nope"}
	b.Count = 3
	s.Fire(b, 10, 10)
	for _, c := range s.Cells(10, 10) {
		require.Equal(t, "#ffffff", c.Color)
	}
}
