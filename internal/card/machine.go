package card

import (
	"math/rand/v2"
	"slices"
)

// DefaultPadding keeps the evading control mostly on screen.
const DefaultPadding = 6

// State is the complete navigation state of the card.
type State struct {
	Screen       Screen
	MusicPlaying bool
	Evasion      Offset
}

// Options configures a Machine. A zero Burst, Rand or Viewport falls back to
// a default.
type Options struct {
	Padding  float64
	Burst    Burst
	Rand     Rand
	Viewport Viewport
}

// Machine applies triggers to State. It is not safe for concurrent use; the
// host dispatches triggers from a single event loop.
type Machine struct {
	state    State
	padding  float64
	burst    Burst
	rng      Rand
	viewport Viewport
}

func NewMachine(opts Options) *Machine {
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	if opts.Burst.Count == 0 {
		opts.Burst = DefaultBurst()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Viewport == nil {
		opts.Viewport = ViewportFunc(func() (int, int) { return 0, 0 })
	}
	return &Machine{
		state:    State{Screen: ScreenStart},
		padding:  opts.Padding,
		burst:    opts.Burst,
		rng:      opts.Rand,
		viewport: opts.Viewport,
	}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Screen() Screen { return m.state.Screen }

// Fire applies t and returns the side effects the host must run, in order.
// A trigger that is not wired for the current screen changes nothing.
func (m *Machine) Fire(t Trigger) []Effect {
	next, ok := Transition(m.state.Screen, t)
	if !ok {
		return nil
	}
	prev := m.state.Screen
	m.state.Screen = next

	var effects []Effect
	switch t {
	case TriggerTapMusic:
		m.state.MusicPlaying = !m.state.MusicPlaying
		if m.state.MusicPlaying {
			effects = append(effects, PlayMusic{})
		} else {
			effects = append(effects, PauseMusic{})
		}
	case TriggerTapYes:
		b := m.burst
		b.Colors = slices.Clone(b.Colors)
		effects = append(effects, Celebrate{Burst: b})
	case TriggerHoverNo:
		w, h := m.viewport.Size()
		m.state.Evasion = Evade(m.rng, w, h, m.padding)
		effects = append(effects, Evaded{Offset: m.state.Evasion})
	}

	if next == ScreenQuestion && prev != ScreenQuestion {
		m.state.Evasion = Offset{}
		effects = append(effects, Evaded{Offset: m.state.Evasion})
	}
	return effects
}
