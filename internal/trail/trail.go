// Package trail keeps a short, self-expiring list of markers at recent
// pointer positions.
package trail

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCapacity = 16
	DefaultLifetime = 600 * time.Millisecond
)

// Point is a viewport position in cells.
type Point struct {
	X, Y int
}

// Move is one pointer-move or touch-move event. Pointer wins over touches.
type Move struct {
	Pointer *Point
	Touches []Point
}

// PointerMove builds a Move for a pointer at (x, y).
func PointerMove(x, y int) Move {
	return Move{Pointer: &Point{X: x, Y: y}}
}

// TouchMove builds a Move from touch points.
func TouchMove(touches ...Point) Move {
	return Move{Touches: touches}
}

// Point extracts the coordinate the marker is placed at: the pointer, or
// else the first touch point.
func (m Move) Point() (Point, bool) {
	if m.Pointer != nil {
		return *m.Pointer, true
	}
	if len(m.Touches) > 0 {
		return m.Touches[0], true
	}
	return Point{}, false
}

// Marker is a transient heart left at a recent pointer position.
type Marker struct {
	ID        uuid.UUID
	X, Y      int
	CreatedAt time.Time
}

// Age reports how long the marker has been alive at now.
func (m Marker) Age(now time.Time) time.Duration {
	return now.Sub(m.CreatedAt)
}
