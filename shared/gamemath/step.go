package gamemath

import "github.com/automoto/followtheleader/mathutil"

// ActorStep is the result of one frame of chasing.
type ActorStep struct {
	Position mathutil.Point
	Velocity mathutil.Point
	Heading  float64
	// Moved is true when velocity was integrated this frame.
	Moved bool
}

// StepActor runs one frame for a chasing actor: Advance, then BoundsCheck, then
// RotateToward the resulting velocity. The heading only turns on frames where the
// actor moved, so an arrival snap keeps the last heading.
func StepActor(pos mathutil.Point, heading float64, vel, target mathutil.Point, hasTarget bool, bounds Rect, speed, rotRate, dt float64) ActorStep {
	pos, vel = Advance(pos, target, hasTarget, vel, speed, dt)
	moved := hasTarget && !vel.IsZero()

	pos, vel = BoundsCheck(pos, vel, bounds)

	if moved {
		heading = RotateToward(heading, vel, rotRate, dt)
	}
	return ActorStep{Position: pos, Velocity: vel, Heading: heading, Moved: moved}
}
