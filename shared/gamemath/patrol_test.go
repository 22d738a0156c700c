package gamemath

import (
	"testing"

	"github.com/automoto/followtheleader/actions"
	"github.com/automoto/followtheleader/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTiming = PatrolTiming{LegDuration: 1.0, PauseDuration: 0.25}

func TestEnemyPatrolShape(t *testing.T) {
	playable := PlayableRect(2048, 1536, 16.0/9.0)
	sched := EnemyPatrol(2048, playable, 100, 60, testTiming, func() {})

	require.True(t, sched.Repeats())
	trip := sched.Children[0]
	require.Len(t, trip.Children, 2)

	half := trip.Children[0]
	require.Len(t, half.Children, 4)
	assert.Equal(t, actions.KindMove, half.Children[0].Kind)
	assert.InDelta(t, -1074, half.Children[0].Delta.X, 1e-9)
	assert.InDelta(t, 546, half.Children[0].Delta.Y, 1e-9)
	assert.Equal(t, 1.0, half.Children[0].Seconds)
	assert.Equal(t, actions.KindRun, half.Children[1].Kind)
	assert.Equal(t, actions.KindWait, half.Children[2].Kind)
	assert.Equal(t, 0.25, half.Children[2].Seconds)
	assert.InDelta(t, -1074, half.Children[3].Delta.X, 1e-9)
	assert.InDelta(t, -546, half.Children[3].Delta.Y, 1e-9)

	assert.Equal(t, mathutil.Zero, trip.Displacement())
	assert.InDelta(t, 4.5, sched.Duration(), 1e-12)
}

func TestEnemyPatrolReachesLowerBand(t *testing.T) {
	playable := PlayableRect(2048, 1536, 16.0/9.0)
	enemyW, enemyH := 100.0, 60.0
	start := EnemySpawn(2048, 1536, enemyW)

	arrivals := 0
	sched := EnemyPatrol(2048, playable, enemyW, enemyH, testTiming, func() { arrivals++ })
	r, err := actions.NewRunner(sched)
	require.NoError(t, err)

	pos := start
	for i := 0; i < 64; i++ {
		assert.Equal(t, 0, arrivals, "frame %d", i)
		pos = pos.Add(r.Update(1.0 / 64))
	}
	assert.Equal(t, 1, arrivals)
	assert.InDelta(t, 1024, pos.X, 1e-9)
	assert.InDelta(t, playable.MaxY()-enemyH/2, pos.Y, 1e-9)

	for i := 0; i < 288-64; i++ {
		pos = pos.Add(r.Update(1.0 / 64))
	}
	assert.InDelta(t, start.X, pos.X, 1e-6)
	assert.InDelta(t, start.Y, pos.Y, 1e-6)
}

func TestEnemyPatrolFromMovedSpawnStillDivesToCentre(t *testing.T) {
	playable := PlayableRect(2048, 1536, 16.0/9.0)
	enemyW, enemyH := 100.0, 60.0
	start := mathutil.Point{X: 2300, Y: 600}

	sched := EnemyPatrolFrom(start, playable, enemyW, enemyH, testTiming, func() {})
	r, err := actions.NewRunner(sched)
	require.NoError(t, err)

	pos := start
	for i := 0; i < 64; i++ {
		pos = pos.Add(r.Update(1.0 / 64))
	}
	assert.InDelta(t, playable.Center().X, pos.X, 1e-9)
	assert.InDelta(t, playable.MaxY()-enemyH/2, pos.Y, 1e-9)

	// Wait, then climb out past the left edge at spawn height.
	for i := 0; i < 16+64; i++ {
		pos = pos.Add(r.Update(1.0 / 64))
	}
	assert.InDelta(t, -enemyW/2, pos.X, 1e-9)
	assert.InDelta(t, start.Y, pos.Y, 1e-9)

	assert.Equal(t, mathutil.Zero, sched.Children[0].Displacement())
}

func TestEnemyPatrolMatchesPatrolFromDefaultSpawn(t *testing.T) {
	playable := PlayableRect(2048, 1536, 16.0/9.0)
	a := EnemyPatrol(2048, playable, 100, 60, testTiming, nil)
	b := EnemyPatrolFrom(EnemySpawn(2048, 1536, 100), playable, 100, 60, testTiming, nil)

	ha, hb := a.Children[0].Children[0], b.Children[0].Children[0]
	for i := range ha.Children {
		assert.InDelta(t, ha.Children[i].Delta.X, hb.Children[i].Delta.X, 1e-9)
		assert.InDelta(t, ha.Children[i].Delta.Y, hb.Children[i].Delta.Y, 1e-9)
	}
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, mathutil.Point{X: 60, Y: 45}, Rect{X: 10, Y: 20, W: 100, H: 50}.Center())
}

func TestEnemySpawn(t *testing.T) {
	assert.Equal(t, mathutil.Point{X: 2098, Y: 768}, EnemySpawn(2048, 1536, 100))
}
