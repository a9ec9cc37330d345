package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type control string

const (
	ctrlNone  control = ""
	ctrlCard  control = "card"
	ctrlMusic control = "music"
	ctrlHeart control = "heart"
	ctrlBack  control = "back"
	ctrlYes   control = "yes"
	ctrlNo    control = "no"
)

type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r rect) shift(dx, dy int) rect {
	r.X += dx
	r.Y += dy
	return r
}

// segment is a run of text in a card row, optionally a clickable control.
type segment struct {
	ctl  control
	text string
}

type row []segment

func (r row) String() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.text)
	}
	return b.String()
}

func (r row) width() int { return ansi.StringWidth(r.String()) }

func text(s string) segment { return segment{text: s} }

func button(ctl control, s string) segment { return segment{ctl: ctl, text: s} }

const (
	cardBorder = 1
	cardPadX   = 3
	cardPadY   = 1
	maxInnerW  = 40
	minInnerW  = 12
)

// layout is the card placed in the viewport together with the screen
// positions of its controls.
type layout struct {
	card  string
	x, y  int
	w, h  int
	inner int
	hot   map[control]rect
}

// arrange centres rows inside a bordered card, centres the card in a
// width x height viewport and records where every control landed.
func arrange(rows []row, width, height int) layout {
	inner := min(maxInnerW, width-2*(cardBorder+cardPadX))
	for _, r := range rows {
		inner = max(inner, r.width())
	}
	inner = max(inner, minInnerW)

	lines := make([]string, len(rows))
	hot := map[control]rect{}
	for i, r := range rows {
		left := (inner - r.width()) / 2
		lines[i] = strings.Repeat(" ", left) + r.String() + strings.Repeat(" ", inner-left-r.width())
		col := left
		for _, s := range r {
			w := ansi.StringWidth(s.text)
			if s.ctl != ctrlNone {
				hot[s.ctl] = rect{X: col, Y: i, W: w, H: 1}
			}
			col += w
		}
	}

	card := cardStyle.Render(strings.Join(lines, "\n"))
	cardLines := strings.Split(card, "\n")
	l := layout{
		card:  card,
		w:     maxLineWidth(cardLines),
		h:     len(cardLines),
		inner: inner,
	}
	l.x = max((width-l.w)/2, 0)
	l.y = max((height-l.h)/2, 0)

	ox := l.x + cardBorder + cardPadX
	oy := l.y + cardBorder + cardPadY
	l.hot = make(map[control]rect, len(hot)+1)
	for ctl, r := range hot {
		l.hot[ctl] = r.shift(ox, oy)
	}
	l.hot[ctrlCard] = rect{X: l.x, Y: l.y, W: l.w, H: l.h}
	return l
}

// hitOrder is the stacking order used by hit, topmost first. The evading
// control is drawn last, so it wins when it lands on another one.
var hitOrder = []control{ctrlNo, ctrlYes, ctrlBack, ctrlMusic, ctrlHeart, ctrlCard}

// hit returns the control under (x, y).
func (l layout) hit(x, y int) control {
	for _, ctl := range hitOrder {
		if r, ok := l.hot[ctl]; ok && r.contains(x, y) {
			return ctl
		}
	}
	return ctrlNone
}
