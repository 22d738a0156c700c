package gamemath

import (
	"testing"

	"github.com/automoto/followtheleader/mathutil"
	"github.com/stretchr/testify/assert"
)

func TestMoveBy(t *testing.T) {
	got := MoveBy(mathutil.Point{X: 400, Y: 400}, mathutil.Point{X: 480, Y: 0}, 0.1)
	assert.InDelta(t, 448, got.X, 1e-9)
	assert.InDelta(t, 400, got.Y, 1e-9)
}

func TestAdvanceWithoutTarget(t *testing.T) {
	pos := mathutil.Point{X: 1, Y: 2}
	vel := mathutil.Point{X: 480}
	gotPos, gotVel := Advance(pos, mathutil.Zero, false, vel, 480, 0.1)
	assert.Equal(t, pos, gotPos)
	assert.Equal(t, vel, gotVel)
}

func TestAdvanceMovesTowardFarTarget(t *testing.T) {
	pos := mathutil.Point{X: 400, Y: 400}
	target := mathutil.Point{X: 1000, Y: 400}
	vel := SteeringVelocity(pos, target, 480)

	gotPos, gotVel := Advance(pos, target, true, vel, 480, 0.1)
	assert.InDelta(t, 448, gotPos.X, 1e-9)
	assert.Equal(t, vel, gotVel)
}

func TestAdvanceSnapsOnExactBoundary(t *testing.T) {
	// 48 units away, 480 u/s over 0.1s: exactly one frame of travel.
	pos := mathutil.Point{X: 400, Y: 400}
	target := mathutil.Point{X: 400, Y: 448}
	vel := mathutil.Point{Y: 480}

	gotPos, gotVel := Advance(pos, target, true, vel, 480, 0.1)
	assert.Equal(t, target, gotPos)
	assert.Equal(t, mathutil.Zero, gotVel)
}

func TestAdvanceSnapsWhenClose(t *testing.T) {
	pos := mathutil.Point{X: 100, Y: 100}
	target := mathutil.Point{X: 103, Y: 104}
	gotPos, gotVel := Advance(pos, target, true, SteeringVelocity(pos, target, 480), 480, 1.0/60)
	assert.Equal(t, target, gotPos)
	assert.True(t, gotVel.IsZero())
}

func TestAdvanceNeverOvershoots(t *testing.T) {
	pos := mathutil.Point{X: 0, Y: 0}
	target := mathutil.Point{X: 333, Y: -127}
	vel := SteeringVelocity(pos, target, 480)
	start := target.Sub(pos).Length()

	for i := 0; i < 120 && !vel.IsZero(); i++ {
		pos, vel = Advance(pos, target, true, vel, 480, 1.0/60)
		assert.LessOrEqual(t, target.Sub(pos).Length(), start)
	}
	assert.Equal(t, target, pos)
	assert.True(t, vel.IsZero())
}
