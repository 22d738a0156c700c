package gamemath

import (
	"math"

	"github.com/automoto/followtheleader/mathutil"
)

// RotateToward turns heading toward the angle of direction by at most
// maxRadiansPerSec*dt, along the shorter way round. It never passes the target angle.
func RotateToward(heading float64, direction mathutil.Point, maxRadiansPerSec, dt float64) float64 {
	shortest := mathutil.ShortestAngleBetween(heading, direction.Angle())
	amount := math.Min(maxRadiansPerSec*dt, math.Abs(shortest))
	return heading + mathutil.Sign(shortest)*amount
}
