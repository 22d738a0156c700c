package gamemath

import "github.com/automoto/followtheleader/mathutil"

// SteeringVelocity returns a velocity of the given speed pointing from current toward target.
// A target equal to current yields a zero velocity instead of a NaN direction.
func SteeringVelocity(current, target mathutil.Point, speed float64) mathutil.Point {
	offset := target.Sub(current)
	if offset.IsZero() {
		return mathutil.Zero
	}
	return offset.Normalized().Scale(speed)
}
