package trail

import (
	"time"

	"github.com/google/uuid"
)

// Options configures an Emitter. Zero values fall back to the defaults.
type Options struct {
	Capacity int
	Lifetime time.Duration
	// SampleInterval drops moves arriving sooner than this after the last
	// accepted one. Zero keeps every move.
	SampleInterval time.Duration
	Now            func() time.Time
	NewID          func() uuid.UUID
}

// Emitter owns the marker sequence. It is driven from a single event loop
// and is not safe for concurrent use.
type Emitter struct {
	capacity int
	lifetime time.Duration
	sample   time.Duration
	now      func() time.Time
	newID    func() uuid.UUID
	sched    Scheduler

	markers  []Marker
	pending  map[uuid.UUID]func() bool
	lastMove time.Time
	closed   bool
}

func NewEmitter(sched Scheduler, opts Options) *Emitter {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Lifetime <= 0 {
		opts.Lifetime = DefaultLifetime
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.New
	}
	return &Emitter{
		capacity: opts.Capacity,
		lifetime: opts.Lifetime,
		sample:   opts.SampleInterval,
		now:      opts.Now,
		newID:    opts.NewID,
		sched:    sched,
		markers:  make([]Marker, 0, opts.Capacity),
		pending:  make(map[uuid.UUID]func() bool),
	}
}

// Move records a marker for ev. It returns false when the event carries no
// coordinate, is sampled out, or the emitter is closed.
func (e *Emitter) Move(ev Move) (Marker, bool) {
	if e.closed {
		return Marker{}, false
	}
	p, ok := ev.Point()
	if !ok {
		return Marker{}, false
	}
	now := e.now()
	if e.sample > 0 && !e.lastMove.IsZero() && now.Sub(e.lastMove) < e.sample {
		return Marker{}, false
	}
	e.lastMove = now

	mk := Marker{ID: e.newID(), X: p.X, Y: p.Y, CreatedAt: now}
	e.markers = append(e.markers, mk)
	if over := len(e.markers) - e.capacity; over > 0 {
		for _, dropped := range e.markers[:over] {
			e.cancel(dropped.ID)
		}
		e.markers = append(e.markers[:0], e.markers[over:]...)
	}

	id := mk.ID
	e.pending[id] = e.sched.AfterFunc(e.lifetime, func() { e.Remove(id) })
	return mk, true
}

// Remove deletes the marker with id. Unknown ids are ignored.
func (e *Emitter) Remove(id uuid.UUID) bool {
	delete(e.pending, id)
	for i, mk := range e.markers {
		if mk.ID == id {
			e.markers = append(e.markers[:i], e.markers[i+1:]...)
			return true
		}
	}
	return false
}

// Markers returns a copy of the live markers, oldest first.
func (e *Emitter) Markers() []Marker {
	out := make([]Marker, len(e.markers))
	copy(out, e.markers)
	return out
}

func (e *Emitter) Len() int { return len(e.markers) }

// Pending reports how many removals are still scheduled.
func (e *Emitter) Pending() int { return len(e.pending) }

// Close cancels every scheduled removal and drops all markers. Moves after
// Close are ignored.
func (e *Emitter) Close() {
	if e.closed {
		return
	}
	e.closed = true
	for id := range e.pending {
		e.cancel(id)
	}
	e.markers = e.markers[:0]
}

func (e *Emitter) cancel(id uuid.UUID) {
	if stop, ok := e.pending[id]; ok {
		stop()
		delete(e.pending, id)
	}
}
