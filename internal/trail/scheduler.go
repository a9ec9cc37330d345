package trail

import (
	"sync"
	"time"
)

// Scheduler runs fn once after d. The returned stop function cancels the
// call if it has not run yet; it reports whether it did so.
//
// Implementations must invoke fn on the same logical thread that drives the
// Emitter.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Post delivers a deferred call into the host event loop.
type Post func(fn func())

// TimerScheduler backs Scheduler with time.AfterFunc. The timer goroutine
// never runs fn itself; it hands fn to post, which is expected to enqueue it
// on the event loop.
type TimerScheduler struct {
	mu   sync.Mutex
	post Post
}

func NewTimerScheduler(post Post) *TimerScheduler {
	return &TimerScheduler{post: post}
}

// Bind sets the delivery function. It exists because the event loop is
// usually created after the components that schedule into it.
func (s *TimerScheduler) Bind(post Post) {
	s.mu.Lock()
	s.post = post
	s.mu.Unlock()
}

func (s *TimerScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() {
		s.mu.Lock()
		post := s.post
		s.mu.Unlock()
		if post != nil {
			post(fn)
		}
	})
	return t.Stop
}
