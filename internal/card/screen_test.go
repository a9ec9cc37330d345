package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var allTriggers = []Trigger{
	TriggerTapCard, TriggerTapMusic, TriggerTapHeart,
	TriggerTapBack, TriggerTapYes, TriggerHoverNo,
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from    Screen
		trigger Trigger
		want    Screen
		wired   bool
	}{
		{ScreenStart, TriggerTapCard, ScreenMenu, true},
		{ScreenStart, TriggerTapHeart, ScreenStart, false},
		{ScreenMenu, TriggerTapMusic, ScreenMenu, true},
		{ScreenMenu, TriggerTapHeart, ScreenQuestion, true},
		{ScreenMenu, TriggerTapYes, ScreenMenu, false},
		{ScreenQuestion, TriggerTapBack, ScreenMenu, true},
		{ScreenQuestion, TriggerTapYes, ScreenSuccess, true},
		{ScreenQuestion, TriggerHoverNo, ScreenQuestion, true},
		{ScreenQuestion, TriggerTapMusic, ScreenQuestion, false},
		{ScreenSuccess, TriggerTapBack, ScreenSuccess, false},
		{ScreenSuccess, TriggerTapCard, ScreenSuccess, false},
	}
	for _, tc := range cases {
		got, wired := Transition(tc.from, tc.trigger)
		require.Equal(t, tc.want, got, "%s --%s-->", tc.from, tc.trigger)
		require.Equal(t, tc.wired, wired, "%s --%s-->", tc.from, tc.trigger)
	}
}

func TestSuccessHasNoOutgoingTransitions(t *testing.T) {
	for _, tr := range allTriggers {
		_, wired := Transition(ScreenSuccess, tr)
		require.False(t, wired, tr)
	}
}

func TestReplayMatchesMachine(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		n := rng.IntN(12)
		seq := make([]Trigger, n)
		for j := range seq {
			seq[j] = allTriggers[rng.IntN(len(allTriggers))]
		}
		m := NewMachine(Options{Rand: rng})
		for _, tr := range seq {
			m.Fire(tr)
		}
		require.Equal(t, Replay(seq...), m.Screen(), "sequence %v", seq)
		require.True(t, m.Screen().Valid())
	}
}

func TestReplayEmptyIsStart(t *testing.T) {
	require.Equal(t, ScreenStart, Replay())
}
