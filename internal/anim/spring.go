// Package anim provides the spring motion used to move the evading control.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultStiffness and DefaultDamping describe a unit-mass spring.
	DefaultStiffness = 300.0
	DefaultDamping   = 20.0

	settleEpsilon = 0.01
)

// Vec is a 2D position or velocity in cells.
type Vec struct {
	X, Y float64
}

// Spring2D animates a point toward a target with a damped spring.
type Spring2D struct {
	spring harmonica.Spring
	pos    Vec
	vel    Vec
	target Vec
}

// NewSpring2D builds a spring stepped at fps frames per second. Stiffness k
// and damping c are converted to harmonica's angular frequency sqrt(k) and
// damping ratio c/(2*sqrt(k)).
func NewSpring2D(fps int, stiffness, damping float64) *Spring2D {
	if fps <= 0 {
		fps = 60
	}
	omega := math.Sqrt(stiffness)
	zeta := damping / (2 * omega)
	return &Spring2D{spring: harmonica.NewSpring(harmonica.FPS(fps), omega, zeta)}
}

func (s *Spring2D) Target() Vec { return s.target }

func (s *Spring2D) Position() Vec { return s.pos }

// SetTarget changes where the spring is heading without jumping.
func (s *Spring2D) SetTarget(v Vec) { s.target = v }

// Snap moves straight to v and stops.
func (s *Spring2D) Snap(v Vec) {
	s.pos, s.target, s.vel = v, v, Vec{}
}

// Step advances one frame.
func (s *Spring2D) Step() Vec {
	s.pos.X, s.vel.X = s.spring.Update(s.pos.X, s.vel.X, s.target.X)
	s.pos.Y, s.vel.Y = s.spring.Update(s.pos.Y, s.vel.Y, s.target.Y)
	if s.Settled() {
		s.pos, s.vel = s.target, Vec{}
	}
	return s.pos
}

// Settled reports whether the point is at rest on its target.
func (s *Spring2D) Settled() bool {
	return math.Abs(s.pos.X-s.target.X) < settleEpsilon &&
		math.Abs(s.pos.Y-s.target.Y) < settleEpsilon &&
		math.Abs(s.vel.X) < settleEpsilon &&
		math.Abs(s.vel.Y) < settleEpsilon
}
