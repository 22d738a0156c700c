package gamemath

import "github.com/automoto/followtheleader/mathutil"

// MoveBy integrates velocity (units/second) over dt seconds.
func MoveBy(pos, velocity mathutil.Point, dt float64) mathutil.Point {
	return pos.Add(velocity.Scale(dt))
}

// Advance is the per-frame chase policy. Without a target nothing moves. When the target is
// within one frame's travel the position snaps onto it and the velocity drops to zero, so the
// actor never overshoots. Otherwise the position integrates and the velocity is kept.
func Advance(pos, target mathutil.Point, hasTarget bool, velocity mathutil.Point, speed, dt float64) (mathutil.Point, mathutil.Point) {
	if !hasTarget {
		return pos, velocity
	}
	remaining := target.Sub(pos)
	if remaining.Length() <= speed*dt {
		return target, mathutil.Zero
	}
	return MoveBy(pos, velocity, dt), velocity
}
