package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrangeCentresCardAndRecordsControls(t *testing.T) {
	rows := []row{
		{text("title")},
		{button(ctrlYes, "[yes]"), text("  "), button(ctrlNo, "[no]")},
	}
	l := arrange(rows, 80, 24)

	require.Equal(t, (80-l.w)/2, l.x)
	require.Equal(t, (24-l.h)/2, l.y)
	require.Equal(t, len(rows)+2*(cardBorder+cardPadY), l.h)

	lines := strings.Split(l.card, "\n")
	yes := l.hot[ctrlYes]
	no := l.hot[ctrlNo]
	require.Equal(t, 5, yes.W)
	require.Equal(t, yes.Y, no.Y)
	require.Equal(t, yes.X+5+2, no.X)

	cardRow := []rune(lines[yes.Y-l.y])
	require.Equal(t, "[yes]", string(cardRow[yes.X-l.x:yes.X-l.x+5]))
	require.Equal(t, "[no]", string(cardRow[no.X-l.x:no.X-l.x+4]))
}

func TestHitPrefersControlsOverCard(t *testing.T) {
	l := arrange([]row{{button(ctrlHeart, "<3")}}, 40, 12)
	h := l.hot[ctrlHeart]
	require.Equal(t, ctrlHeart, l.hit(h.X, h.Y))
	require.Equal(t, ctrlHeart, l.hit(h.X+1, h.Y))
	require.Equal(t, ctrlCard, l.hit(l.x, l.y))
	require.Equal(t, ctrlNone, l.hit(0, 0))
}

func TestCanvasStampClips(t *testing.T) {
	c := newCanvas(6, 2)
	c.stamp("ab\ncd\nef", 4, 1)
	c.stamp("xyz", -1, 0)
	require.Equal(t, "yz    \n    ab", c.String())
}

func TestOverlayLineKeepsSurroundings(t *testing.T) {
	require.Equal(t, "abXYef", overlayLine("abcdef", "XY", 2, 6))
	require.Equal(t, "abcdef", overlayLine("abcdef", "XY", 9, 6))
	require.Equal(t, "ab  X ", overlayLine("ab", "X", 4, 6))
}
