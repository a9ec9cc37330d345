package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jask/valentine/internal/card"
)

const (
	noLabel   = " No "
	yesLabel  = " YES! ♥ "
	iconGap   = "    "
	slideRows = 2
)

var musicFrames = []string{"♪", "♫"}

func (m *Model) rows() []row {
	st := m.machine.State()
	switch st.Screen {
	case card.ScreenStart:
		return []row{
			{text(iconStyle.Render("✉"))},
			{},
			{text(titleStyle.Render("You have a message"))},
			{text(captionStyle.Render("Click to open"))},
		}
	case card.ScreenMenu:
		caption := "Tap the icons"
		if st.MusicPlaying {
			caption = "Listening to our vibe..."
		}
		return []row{
			{text(titleStyle.Render("For you..."))},
			{},
			{button(ctrlMusic, m.musicIcon(st.MusicPlaying)), text(iconGap), button(ctrlHeart, m.heartIcon())},
			{},
			{text(captionStyle.Render(caption))},
		}
	case card.ScreenQuestion:
		return []row{
			{button(ctrlBack, backStyle.Render("← back"))},
			{},
			{text(titleStyle.Render(m.cfg.UI.Question))},
			{},
			{button(ctrlYes, yesStyle.Render(yesLabel)), text("   "), button(ctrlNo, strings.Repeat(" ", ansi.StringWidth(noLabel)))},
		}
	default:
		out := []row{
			{text(heartStyle.Render("♥  ♥  ♥"))},
			{},
			{text(titleStyle.Render(m.cfg.UI.SuccessTitle))},
		}
		if m.cfg.UI.SuccessNote != "" {
			out = append(out, row{text(captionStyle.Render(m.cfg.UI.SuccessNote))})
		}
		return out
	}
}

func (m *Model) musicIcon(playing bool) string {
	if !playing {
		return iconIdle.Render("[ ♫ ]")
	}
	// four glyph changes per second
	perGlyph := max(m.cfg.UI.FPS/4, 1)
	g := musicFrames[(m.frame/perGlyph)%len(musicFrames)]
	return iconStyle.Render("[ " + g + " ]")
}

func (m *Model) heartIcon() string {
	beat := max(m.cfg.UI.FPS/2, 1)
	if (m.frame/beat)%2 == 1 {
		return heartStyle.Render("[ ♥ ]")
	}
	return iconStyle.Render("[ ♥ ]")
}

// layout places the current screen's card, sliding it in while the screen
// is revealed, and moves the "No" control to where it is drawn.
func (m *Model) layout() layout {
	l := arrange(m.rows(), m.width, m.height)
	if slide := int(math.Round(slideRows * (1 - m.revealProgress()))); slide != 0 {
		l.y += slide
		for ctl, r := range l.hot {
			l.hot[ctl] = r.shift(0, slide)
		}
	}
	if r, ok := l.hot[ctrlNo]; ok {
		pos := m.spring.Position()
		l.hot[ctrlNo] = r.shift(int(math.Round(pos.X)), int(math.Round(pos.Y)))
	}
	return l
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.layout()
	c := newCanvas(m.width, m.height)
	c.stamp(l.card, l.x, l.y)

	if r, ok := l.hot[ctrlNo]; ok {
		c.stamp(noStyle.Render(noLabel), r.X, r.Y)
	}
	m.drawTrail(c)
	for _, cell := range m.confetti.Cells(m.width, m.height) {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(cell.Color))
		c.stamp(style.Render(string(cell.Glyph)), cell.X, cell.Y)
	}

	footer := m.help.View(screenKeys{keyMap: m.keys, screen: m.machine.Screen()})
	c.stamp(helpStyle.Render(footer), 1, m.height-1)
	return c.String()
}

// drawTrail stamps a heart at each marker, fading with age.
func (m *Model) drawTrail(c *canvas) {
	markers := m.trail.Markers()
	if len(markers) == 0 {
		return
	}
	rose, _ := colorful.Hex(string(colorRose))
	base, _ := colorful.Hex(string(colorBase))
	lifetime := m.cfg.Trail.Lifetime
	now := m.now()
	for _, mk := range markers {
		fade := 0.0
		if lifetime > 0 {
			fade = math.Min(float64(mk.Age(now))/float64(lifetime), 1)
		}
		col := rose.BlendLab(base, fade).Clamped().Hex()
		c.stamp(lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render("♥"), mk.X, mk.Y)
	}
}
