package gamemath

import "github.com/automoto/followtheleader/mathutil"

// PointerTracker turns polled pointer state into touch events. An event is reported
// when the pointer goes down or moves while held; a motionless held pointer reports nothing.
type PointerTracker struct {
	down  bool
	lastX int
	lastY int
}

// Observe records the pointer state for this poll and reports whether it is an event.
func (t *PointerTracker) Observe(x, y int, down bool) (mathutil.Point, bool) {
	if !down {
		t.down = false
		return mathutil.Zero, false
	}

	began := !t.down
	moved := x != t.lastX || y != t.lastY
	t.down = true
	t.lastX, t.lastY = x, y

	if !began && !moved {
		return mathutil.Zero, false
	}
	return mathutil.Point{X: float64(x), Y: float64(y)}, true
}
