// Package confetti renders celebratory particle bursts on a cell grid.
package confetti

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jask/valentine/internal/card"
)

const (
	// cellAspect corrects for terminal cells being about twice as tall as
	// they are wide.
	cellAspect = 0.5

	minSpeed = 30.0 // cells per second
	maxSpeed = 60.0
	gravity  = 40.0 // cells per second squared, before aspect
	drag     = 0.9  // velocity kept per 1/60 s
	minLife  = 1800 * time.Millisecond
	maxLife  = 3000 * time.Millisecond
)

var glyphs = []rune{'▪', '•', '◆', '▴', '✦'}

// Particle is one piece of confetti. Positions are in cells.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
	Color  colorful.Color
	Age    time.Duration
	Life   time.Duration
}

// Cell is a particle projected onto the grid, ready to draw.
type Cell struct {
	X, Y  int
	Glyph rune
	Color string
}

// System owns the live particles. Like the rest of the UI state it is
// stepped from the event loop only.
type System struct {
	rng        *rand.Rand
	background colorful.Color
	particles  []Particle
	fired      int
}

// NewSystem returns an empty system. Particles fade toward background as
// they age.
func NewSystem(rng *rand.Rand, background string) *System {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	return &System{rng: rng, background: bg}
}

// Fire spawns b.Count particles at b.Origin inside a width x height grid,
// launched upward within a cone of b.Spread degrees.
func (s *System) Fire(b card.Burst, width, height int) {
	s.fired++
	colors := parsePalette(b.Colors)
	ox := b.Origin.X * float64(width)
	oy := b.Origin.Y * float64(height)
	half := b.Spread / 2 * math.Pi / 180
	for i := 0; i < b.Count; i++ {
		angle := math.Pi/2 + (s.rng.Float64()*2-1)*half
		speed := minSpeed + s.rng.Float64()*(maxSpeed-minSpeed)
		life := minLife + time.Duration(s.rng.Int64N(int64(maxLife-minLife)))
		s.particles = append(s.particles, Particle{
			X:     ox,
			Y:     oy,
			VX:    math.Cos(angle) * speed,
			VY:    -math.Sin(angle) * speed * cellAspect,
			Glyph: glyphs[s.rng.IntN(len(glyphs))],
			Color: colors[s.rng.IntN(len(colors))],
			Life:  life,
		})
	}
}

// Fired reports how many bursts have been triggered.
func (s *System) Fired() int { return s.fired }

// Step advances every particle by dt and drops the expired ones.
func (s *System) Step(dt time.Duration) {
	if len(s.particles) == 0 {
		return
	}
	sec := dt.Seconds()
	keep := math.Pow(drag, sec*60)
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.VX *= keep
		p.VY = p.VY*keep + gravity*cellAspect*sec
		p.X += p.VX * sec
		p.Y += p.VY * sec
		live = append(live, p)
	}
	s.particles = live
}

func (s *System) Active() bool { return len(s.particles) > 0 }

func (s *System) Len() int { return len(s.particles) }

func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Cells projects the particles that fall inside the grid. Later particles
// win when two share a cell.
func (s *System) Cells(width, height int) []Cell {
	out := make([]Cell, 0, len(s.particles))
	for _, p := range s.particles {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		c := p.Color
		if fade := float64(p.Age) / float64(p.Life); fade > 0 {
			c = c.BlendLab(s.background, fade*fade).Clamped()
		}
		out = append(out, Cell{X: x, Y: y, Glyph: p.Glyph, Color: c.Hex()})
	}
	return out
}

// Clear drops all particles.
func (s *System) Clear() { s.particles = s.particles[:0] }

func parsePalette(hexes []string) []colorful.Color {
	out := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		out = append(out, colorful.Color{R: 1, G: 1, B: 1})
	}
	return out
}
