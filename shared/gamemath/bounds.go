package gamemath

import "github.com/automoto/followtheleader/mathutil"

// Rect is an axis-aligned rectangle with its origin at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }

func (r Rect) Center() mathutil.Point {
	return mathutil.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// PlayableRect returns the band of the scene that is visible on every supported screen.
// It spans the full scene width and is maxAspect wide-to-tall, centred vertically. A scene
// that is not taller than maxAspect is playable in full.
func PlayableRect(sceneW, sceneH, maxAspect float64) Rect {
	height := sceneW / maxAspect
	if height > sceneH {
		height = sceneH
	}
	margin := (sceneH - height) / 2
	return Rect{X: 0, Y: margin, W: sceneW, H: height}
}

// MovementBounds is the rectangle actors bounce inside: the full scene width and the
// vertical extent of the playable rect.
func MovementBounds(sceneW float64, playable Rect) Rect {
	return Rect{X: 0, Y: playable.Y, W: sceneW, H: playable.H}
}

// BoundsCheck clamps pos into bounds. Each axis is handled on its own; touching or
// crossing an edge pins the position to it and reverses that axis of the velocity.
func BoundsCheck(pos, velocity mathutil.Point, bounds Rect) (mathutil.Point, mathutil.Point) {
	if pos.X <= bounds.MinX() {
		pos.X = bounds.MinX()
		velocity.X = -velocity.X
	}
	if pos.X >= bounds.MaxX() {
		pos.X = bounds.MaxX()
		velocity.X = -velocity.X
	}
	if pos.Y <= bounds.MinY() {
		pos.Y = bounds.MinY()
		velocity.Y = -velocity.Y
	}
	if pos.Y >= bounds.MaxY() {
		pos.Y = bounds.MaxY()
		velocity.Y = -velocity.Y
	}
	return pos, velocity
}
