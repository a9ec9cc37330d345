package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// A slow major arpeggio, in Hz.
var tuneNotes = []float64{
	523.25, 659.25, 783.99, 1046.50,
	783.99, 659.25, 587.33, 698.46,
	880.00, 698.46, 587.33, 493.88,
}

// Tune is a music-box style arpeggio. It is a beep.StreamSeeker so it can
// be looped.
type Tune struct {
	sr      beep.SampleRate
	perNote int
	pos     int
}

// NewTune creates a tune generator at sample rate sr.
func NewTune(sr beep.SampleRate) *Tune {
	return &Tune{sr: sr, perNote: sr.N(350 * time.Millisecond)}
}

func (g *Tune) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.Len()
	if g.pos >= total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= total {
			return i, true
		}
		note := tuneNotes[g.pos/g.perNote]
		t := float64(g.pos%g.perNote) / float64(g.sr)

		// Bell-like: fundamental plus a quiet octave, exponential decay.
		envelope := math.Exp(-t * 6)
		sample := 0.12 * envelope * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(4*math.Pi*note*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Tune) Err() error { return nil }

func (g *Tune) Len() int { return g.perNote * len(tuneNotes) }

func (g *Tune) Position() int { return g.pos }

func (g *Tune) Seek(p int) error {
	if p < 0 {
		p = 0
	}
	if p > g.Len() {
		p = g.Len()
	}
	g.pos = p
	return nil
}
