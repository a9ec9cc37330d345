package audio

import "sync"

// Device is anything that can start and pause a track. *Player is one.
type Device interface {
	Play() error
	Pause()
}

type op bool

const (
	opPause op = false
	opPlay  op = true
)

// Queue runs Play and Pause requests on a background goroutine, in the order
// they were made, so the caller never blocks on the output device. Play
// errors go to onErr and nowhere else.
type Queue struct {
	dev   Device
	onErr func(error)

	mu      sync.Mutex
	pending []op
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

func NewQueue(dev Device, onErr func(error)) *Queue {
	if onErr == nil {
		onErr = func(error) {}
	}
	q := &Queue{
		dev:   dev,
		onErr: onErr,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

// Play requests playback. It returns immediately.
func (q *Queue) Play() { q.push(opPlay) }

// Pause requests a pause. It returns immediately.
func (q *Queue) Pause() { q.push(opPause) }

// Close stops accepting requests, waits for queued ones to finish and
// returns.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	close(q.wake)
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) push(o op) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.pending = append(q.pending, o)
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) run() {
	defer close(q.done)
	for range q.wake {
		q.drain()
	}
	q.drain()
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		o := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		if o == opPlay {
			if err := q.dev.Play(); err != nil {
				q.onErr(err)
			}
		} else {
			q.dev.Pause()
		}
	}
}
