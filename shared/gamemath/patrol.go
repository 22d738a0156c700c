package gamemath

import (
	"github.com/automoto/followtheleader/actions"
	"github.com/automoto/followtheleader/mathutil"
)

// PatrolTiming holds the durations of the enemy patrol, in seconds.
type PatrolTiming struct {
	LegDuration   float64
	PauseDuration float64
}

// EnemyPatrol builds the enemy's schedule. Starting just off the right edge at mid-height,
// the enemy dives to the horizontal centre of the lower band of the playable rect, calls
// onArrive, pauses, then climbs back out past the left edge. That one-way path followed by
// its reverse is repeated forever.
func EnemyPatrol(sceneW float64, playable Rect, enemyW, enemyH float64, timing PatrolTiming, onArrive func()) actions.Action {
	spawn := mathutil.Point{X: sceneW + enemyW/2, Y: playable.Center().Y}
	return EnemyPatrolFrom(spawn, playable, enemyW, enemyH, timing, onArrive)
}

// EnemyPatrolFrom builds the same patrol for an enemy starting at spawn. The dive always
// ends at the centre of the lower band and the exit half a sprite past the left edge at
// spawn height, wherever the spawn is.
func EnemyPatrolFrom(spawn mathutil.Point, playable Rect, enemyW, enemyH float64, timing PatrolTiming, onArrive func()) actions.Action {
	bottom := mathutil.Point{X: playable.Center().X, Y: playable.MaxY() - enemyH/2}
	exit := mathutil.Point{X: playable.MinX() - enemyW/2, Y: spawn.Y}

	half := actions.Sequence(
		actions.MoveBy(bottom.Sub(spawn), timing.LegDuration),
		actions.Run(onArrive),
		actions.Wait(timing.PauseDuration),
		actions.MoveBy(exit.Sub(bottom), timing.LegDuration),
	)
	return actions.RepeatForever(actions.Sequence(half, half.Reversed()))
}

// EnemySpawn is where the patrol starts: half a sprite past the right edge, at mid-height.
func EnemySpawn(sceneW, sceneH, enemyW float64) mathutil.Point {
	return mathutil.Point{X: sceneW + enemyW/2, Y: sceneH / 2}
}
