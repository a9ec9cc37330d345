package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size grid of styled lines that layers are stamped onto.
type canvas struct {
	lines         []string
	width, height int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, lines: make([]string, height)}
	blank := strings.Repeat(" ", max(width, 0))
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// stamp draws block with its top-left corner at (x, y). Parts falling
// outside the canvas are clipped.
func (c *canvas) stamp(block string, x, y int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		c.lines[row] = overlayLine(c.lines[row], line, x, c.width)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// overlayLine replaces the columns of base starting at x with line.
func overlayLine(base, line string, x, width int) string {
	if x < 0 {
		line = dropColumns(line, -x)
		x = 0
	}
	if x >= width {
		return base
	}
	line = ansi.Truncate(line, width-x, "")
	target := padRightANSI(base, width)
	left := ansi.Truncate(target, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	pos := x + ansi.StringWidth(line)
	right := dropColumns(target, pos)
	if gap := width - pos - ansi.StringWidth(right); gap > 0 {
		right = strings.Repeat(" ", gap) + right
	}
	return left + line + right
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
