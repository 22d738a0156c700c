package actions

import (
	"testing"

	"github.com/automoto/followtheleader/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tweenDelta = 1e-3

func TestRunnerInterpolatesMove(t *testing.T) {
	r, err := NewRunner(MoveBy(mathutil.Point{X: 100, Y: -50}, 1))
	require.NoError(t, err)

	d := r.Update(0.5)
	assert.InDelta(t, 50, d.X, tweenDelta)
	assert.InDelta(t, -25, d.Y, tweenDelta)
	assert.False(t, r.Done())

	d2 := r.Update(0.75)
	total := d.Add(d2)
	assert.Equal(t, 100.0, roundTo(total.X))
	assert.Equal(t, -50.0, roundTo(total.Y))
	assert.True(t, r.Done())

	assert.Equal(t, mathutil.Zero, r.Update(1))
}

func TestRunnerCarriesLeftoverTime(t *testing.T) {
	r, err := NewRunner(Sequence(
		MoveBy(mathutil.Point{X: 10}, 1),
		MoveBy(mathutil.Point{Y: 10}, 1),
	))
	require.NoError(t, err)

	d := r.Update(1.5)
	assert.InDelta(t, 10, d.X, tweenDelta)
	assert.InDelta(t, 5, d.Y, tweenDelta)
	assert.Equal(t, 1, r.Index())
}

func TestRunnerWaitHoldsPosition(t *testing.T) {
	r, err := NewRunner(Sequence(Wait(0.25), MoveBy(mathutil.Point{X: 4}, 1)))
	require.NoError(t, err)

	assert.Equal(t, mathutil.Zero, r.Update(0.2))
	d := r.Update(0.55)
	assert.InDelta(t, 2, d.X, tweenDelta)
}

func TestRunnerFiresCallbackOnArrival(t *testing.T) {
	calls := 0
	r, err := NewRunner(Sequence(
		MoveBy(mathutil.Point{X: 1}, 1),
		Run(func() { calls++ }),
		Wait(1),
	))
	require.NoError(t, err)

	r.Update(0.9)
	assert.Equal(t, 0, calls)
	r.Update(0.2)
	assert.Equal(t, 1, calls)
	r.Update(5)
	assert.Equal(t, 1, calls)
	assert.True(t, r.Done())
}

func TestRunnerZeroDurationMoveAppliesImmediately(t *testing.T) {
	r, err := NewRunner(MoveBy(mathutil.Point{X: 7}, 0))
	require.NoError(t, err)
	assert.Equal(t, mathutil.Point{X: 7}, r.Update(0))
	assert.True(t, r.Done())
}

func TestRunnerRepeatForeverRoundTrip(t *testing.T) {
	arrivals := 0
	half := Sequence(
		MoveBy(mathutil.Point{X: -300, Y: 120}, 1),
		Run(func() { arrivals++ }),
		Wait(0.25),
		MoveBy(mathutil.Point{X: -300, Y: -120}, 1),
	)
	r, err := NewRunner(RepeatForever(Sequence(half, half.Reversed())))
	require.NoError(t, err)

	pos := mathutil.Point{X: 1000, Y: 500}
	for i := 0; i < 288; i++ { // 4.5s in 1/64s frames
		pos = pos.Add(r.Update(1.0 / 64))
	}
	assert.InDelta(t, 1000, pos.X, 1e-6)
	assert.InDelta(t, 500, pos.Y, 1e-6)
	assert.Equal(t, 2, arrivals)
	assert.False(t, r.Done())

	// keeps going on the next lap
	pos = pos.Add(r.Update(0.5))
	assert.Less(t, pos.X, 1000.0)
}

func TestRunnerRejectsInvalidSchedules(t *testing.T) {
	_, err := NewRunner(RepeatForever(Run(func() {})))
	assert.ErrorIs(t, err, ErrZeroDurationLoop)

	_, err = NewRunner(Sequence(RepeatForever(Wait(1))))
	assert.ErrorIs(t, err, ErrNestedRepeat)
}

func TestRunnerEmptySequenceIsDone(t *testing.T) {
	r, err := NewRunner(Sequence())
	require.NoError(t, err)
	assert.True(t, r.Done())
	assert.Equal(t, mathutil.Zero, r.Update(1))
}

func roundTo(v float64) float64 {
	const scale = 1e6
	if v < 0 {
		return -float64(int64(-v*scale+0.5)) / scale
	}
	return float64(int64(v*scale+0.5)) / scale
}
