package gamemath

import (
	"testing"

	"github.com/automoto/followtheleader/mathutil"
	"github.com/stretchr/testify/assert"
)

func TestPointerTrackerReportsBeginAndDrag(t *testing.T) {
	var pt PointerTracker

	_, ok := pt.Observe(0, 0, false)
	assert.False(t, ok)

	p, ok := pt.Observe(100, 200, true)
	assert.True(t, ok)
	assert.Equal(t, mathutil.Point{X: 100, Y: 200}, p)

	p, ok = pt.Observe(110, 200, true)
	assert.True(t, ok)
	assert.Equal(t, mathutil.Point{X: 110, Y: 200}, p)
}

func TestPointerTrackerHeldStillReportsNothing(t *testing.T) {
	var pt PointerTracker

	_, ok := pt.Observe(100, 200, true)
	assert.True(t, ok)
	for i := 0; i < 5; i++ {
		_, ok = pt.Observe(100, 200, true)
		assert.False(t, ok, "poll %d", i)
	}
}

func TestPointerTrackerReleaseThenPressSamePointIsNewTouch(t *testing.T) {
	var pt PointerTracker

	pt.Observe(100, 200, true)
	_, ok := pt.Observe(0, 0, false)
	assert.False(t, ok)

	_, ok = pt.Observe(100, 200, true)
	assert.True(t, ok)
}
