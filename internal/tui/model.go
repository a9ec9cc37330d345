package tui

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/valentine/internal/anim"
	"github.com/jask/valentine/internal/card"
	"github.com/jask/valentine/internal/config"
	"github.com/jask/valentine/internal/confetti"
	"github.com/jask/valentine/internal/logging"
	"github.com/jask/valentine/internal/trail"
)

const revealDuration = 250 * time.Millisecond

// Music controls the looping track. Both calls must return immediately.
type Music interface {
	Play()
	Pause()
}

type noMusic struct{}

func (noMusic) Play()  {}
func (noMusic) Pause() {}

// Deps are the collaborators the model drives.
type Deps struct {
	Config config.Config
	Music  Music
	// Scheduler must deliver callbacks through the program, see Poster.
	Scheduler trail.Scheduler
	Logger    *slog.Logger
	Rand      *rand.Rand
	Now       func() time.Time
}

// Model is the Bubble Tea host for the card. All of its state is touched
// from the program's event loop only.
type Model struct {
	cfg      config.Config
	machine  *card.Machine
	trail    *trail.Emitter
	confetti *confetti.System
	spring   *anim.Spring2D
	music    Music
	logger   *slog.Logger
	now      func() time.Time
	keys     keyMap
	help     help.Model

	width, height int
	frame         int
	ticking       bool
	revealAt      time.Time
	hoverNo       bool
	closed        bool
}

type frameMsg time.Time

// postMsg carries a deferred call into the event loop.
type postMsg struct {
	fn func()
}

// Poster returns a trail.Post that runs callbacks inside p's event loop.
func Poster(p *tea.Program) trail.Post {
	return func(fn func()) { p.Send(postMsg{fn: fn}) }
}

func New(d Deps) *Model {
	if d.Music == nil {
		d.Music = noMusic{}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if d.Scheduler == nil {
		d.Scheduler = trail.NewTimerScheduler(nil)
	}
	if d.Config.UI.FPS <= 0 {
		d.Config.UI.FPS = 60
	}
	if d.Config.Trail.Lifetime <= 0 {
		d.Config.Trail.Lifetime = trail.DefaultLifetime
	}
	if d.Config.Evasion.Stiffness <= 0 {
		d.Config.Evasion.Stiffness = anim.DefaultStiffness
		d.Config.Evasion.Damping = anim.DefaultDamping
	}

	m := &Model{
		cfg:    d.Config,
		music:  d.Music,
		logger: d.Logger,
		now:    d.Now,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.machine = card.NewMachine(card.Options{
		Padding:  d.Config.Evasion.Padding,
		Burst:    burstFromConfig(d.Config.Celebration),
		Rand:     d.Rand,
		Viewport: card.ViewportFunc(func() (int, int) { return m.width, m.height }),
	})
	m.trail = trail.NewEmitter(d.Scheduler, trail.Options{
		Capacity:       d.Config.Trail.Capacity,
		Lifetime:       d.Config.Trail.Lifetime,
		SampleInterval: d.Config.Trail.SampleInterval,
		Now:            d.Now,
	})
	m.confetti = confetti.NewSystem(d.Rand, string(colorBase))
	m.spring = anim.NewSpring2D(d.Config.UI.FPS, d.Config.Evasion.Stiffness, d.Config.Evasion.Damping)
	return m
}

func burstFromConfig(c config.CelebrationConfig) card.Burst {
	if c.Count == 0 {
		return card.DefaultBurst()
	}
	return card.Burst{
		Count:  c.Count,
		Spread: c.Spread,
		Origin: card.Point{X: c.OriginX, Y: c.OriginY},
		Colors: c.Colors,
	}
}

// State exposes the navigation state, mostly for tests and diagnostics.
func (m *Model) State() card.State { return m.machine.State() }

// Markers returns the live trail markers, oldest first.
func (m *Model) Markers() []trail.Marker { return m.trail.Markers() }

// Close tears the view down: pending marker removals are cancelled and no
// further input is processed. Safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.trail.Close()
	m.confetti.Clear()
}

func (m *Model) Init() tea.Cmd {
	m.revealAt = m.now()
	return m.ensureTick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.Close()
			return m, tea.Quit
		}
		if m.closed {
			return m, nil
		}
		if t, ok := m.keys.trigger(msg); ok {
			return m, m.fire(t)
		}
		return m, nil
	case tea.MouseMsg:
		if m.closed {
			return m, nil
		}
		return m, m.handleMouse(msg)
	case postMsg:
		if !m.closed {
			msg.fn()
		}
		return m, nil
	case frameMsg:
		return m, m.step()
	}
	return m, nil
}

func (m *Model) fire(t card.Trigger) tea.Cmd {
	prev := m.machine.Screen()
	effects := m.machine.Fire(t)
	screen := m.machine.Screen()
	entered := screen != prev

	for _, e := range effects {
		switch e := e.(type) {
		case card.PlayMusic:
			m.music.Play()
		case card.PauseMusic:
			m.music.Pause()
		case card.Celebrate:
			m.confetti.Fire(e.Burst, m.width, m.height)
		case card.Evaded:
			target := anim.Vec{X: e.Offset.X, Y: e.Offset.Y}
			if entered {
				m.spring.Snap(target)
			} else {
				m.spring.SetTarget(target)
			}
		}
	}
	if entered {
		m.revealAt = m.now()
		m.hoverNo = false
		m.logger.Debug("screen changed", "from", string(prev), "to", string(screen), "trigger", string(t))
	}
	return m.ensureTick()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionMotion:
		mv := trail.PointerMove(msg.X, msg.Y)
		if msg.Button == tea.MouseButtonLeft {
			mv = trail.TouchMove(trail.Point{X: msg.X, Y: msg.Y})
		}
		m.trail.Move(mv)

		over := m.machine.Screen() == card.ScreenQuestion && m.layout().hit(msg.X, msg.Y) == ctrlNo
		entering := over && !m.hoverNo
		m.hoverNo = over
		if entering {
			return m.fire(card.TriggerHoverNo)
		}
		return m.ensureTick()
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if t, ok := m.tap(m.layout().hit(msg.X, msg.Y)); ok {
			return m.fire(t)
		}
	}
	return nil
}

// tap maps a clicked control to its trigger on the current screen.
func (m *Model) tap(ctl control) (card.Trigger, bool) {
	switch ctl {
	case ctrlCard:
		if m.machine.Screen() == card.ScreenStart {
			return card.TriggerTapCard, true
		}
	case ctrlMusic:
		return card.TriggerTapMusic, true
	case ctrlHeart:
		return card.TriggerTapHeart, true
	case ctrlBack:
		return card.TriggerTapBack, true
	case ctrlYes:
		return card.TriggerTapYes, true
	case ctrlNo:
		// touching the control counts as reaching for it
		return card.TriggerHoverNo, true
	}
	return "", false
}

func (m *Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.cfg.UI.FPS)
}

func (m *Model) revealProgress() float64 {
	if m.revealAt.IsZero() {
		return 1
	}
	p := float64(m.now().Sub(m.revealAt)) / float64(revealDuration)
	return math.Min(math.Max(p, 0), 1)
}

func (m *Model) animating() bool {
	st := m.machine.State()
	return !m.spring.Settled() ||
		m.confetti.Active() ||
		m.trail.Len() > 0 ||
		m.revealProgress() < 1 ||
		(st.Screen == card.ScreenMenu && st.MusicPlaying)
}

func (m *Model) ensureTick() tea.Cmd {
	if m.ticking || m.closed || !m.animating() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) step() tea.Cmd {
	m.frame++
	m.spring.Step()
	m.confetti.Step(m.frameInterval())
	if !m.closed && m.animating() {
		return m.tick()
	}
	m.ticking = false
	return nil
}
