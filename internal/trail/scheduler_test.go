package trail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimerSchedulerPostsIntoLoop(t *testing.T) {
	posted := make(chan func(), 1)
	s := NewTimerScheduler(nil)
	s.Bind(func(fn func()) { posted <- fn })

	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case fn := <-posted:
		require.False(t, ran, "timer goroutine must not run the callback")
		fn()
		require.True(t, ran)
	case <-time.After(2 * time.Second):
		t.Fatal("callback never posted")
	}
}

func TestTimerSchedulerStop(t *testing.T) {
	posted := make(chan func(), 1)
	s := NewTimerScheduler(func(fn func()) { posted <- fn })
	stop := s.AfterFunc(time.Hour, func() {})
	require.True(t, stop())
	require.False(t, stop())
	require.Empty(t, posted)
}
