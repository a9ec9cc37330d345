package anim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpringMovesGraduallyAndSettles(t *testing.T) {
	s := NewSpring2D(60, DefaultStiffness, DefaultDamping)
	s.SetTarget(Vec{X: 20, Y: -8})
	require.False(t, s.Settled())

	first := s.Step()
	require.Greater(t, first.X, 0.0)
	require.Less(t, first.X, 20.0, "a spring never jumps in one frame")

	for i := 0; i < 600 && !s.Settled(); i++ {
		s.Step()
	}
	require.True(t, s.Settled())
	require.Equal(t, Vec{X: 20, Y: -8}, s.Position())
}

func TestSnap(t *testing.T) {
	s := NewSpring2D(30, DefaultStiffness, DefaultDamping)
	s.SetTarget(Vec{X: 5})
	s.Step()
	s.Snap(Vec{})
	require.True(t, s.Settled())
	require.Equal(t, Vec{}, s.Position())
	require.Equal(t, Vec{}, s.Target())
}
