package gamemath

import (
	"math"
	"testing"

	"github.com/automoto/followtheleader/mathutil"
	"github.com/stretchr/testify/assert"
)

func TestRotateTowardIsRateLimited(t *testing.T) {
	got := RotateToward(0, mathutil.Point{X: 0, Y: 1}, math.Pi, 0.1)
	assert.InDelta(t, math.Pi*0.1, got, 1e-12)
}

func TestRotateTowardTakesShorterWay(t *testing.T) {
	// Facing +x, target is -y (3π/2 the long way): turn negative.
	got := RotateToward(0, mathutil.Point{X: 0, Y: -1}, math.Pi, 0.1)
	assert.InDelta(t, -math.Pi*0.1, got, 1e-12)
}

func TestRotateTowardStopsOnTarget(t *testing.T) {
	got := RotateToward(0.1, mathutil.Point{X: 1, Y: 0}, 4*math.Pi, 1)
	assert.InDelta(t, 0, got, 1e-12)
}

func TestRotateTowardConverges(t *testing.T) {
	dir := mathutil.Point{X: -1, Y: -1}
	target := dir.Angle()
	heading := 0.5
	rate := 4 * math.Pi
	dt := 1.0 / 60

	prev := math.Abs(mathutil.ShortestAngleBetween(heading, target))
	for i := 0; i < 120; i++ {
		heading = RotateToward(heading, dir, rate, dt)
		gap := math.Abs(mathutil.ShortestAngleBetween(heading, target))
		assert.LessOrEqual(t, gap, prev+1e-12, "frame %d", i)
		prev = gap
	}
	assert.InDelta(t, 0, mathutil.ShortestAngleBetween(heading, target), 1e-9)

	// once there it stays put
	again := RotateToward(heading, dir, rate, dt)
	assert.InDelta(t, heading, again, 1e-9)
}
