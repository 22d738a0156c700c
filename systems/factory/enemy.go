package factory

import (
	"fmt"

	"github.com/automoto/followtheleader/actions"
	"github.com/automoto/followtheleader/archetypes"
	"github.com/automoto/followtheleader/assets"
	"github.com/automoto/followtheleader/components"
	cfg "github.com/automoto/followtheleader/config"
	"github.com/automoto/followtheleader/logging"
	"github.com/automoto/followtheleader/mathutil"
	"github.com/automoto/followtheleader/shared/gamemath"
	"github.com/automoto/followtheleader/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateEnemy spawns the patrolling enemy at (x, y) and hands it its schedule, built
// from that spawn point.
// The schedule is played by UpdatePatrol, not by the per-frame movement code.
func CreateEnemy(ecs *ecs.ECS, x, y float64, playfield *components.PlayfieldData) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	img := assets.GetImage(assets.Enemy)
	w := float64(cfg.Enemy.Width)
	h := float64(cfg.Enemy.Height)

	components.Actor.SetValue(enemy, components.ActorData{
		Position: mathutil.Point{X: x, Y: y},
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Image:  img,
		PivotX: float64(img.Bounds().Dx()) / 2,
		PivotY: float64(img.Bounds().Dy()) / 2,
		Scale:  1,
	})

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	spawn := mathutil.Point{X: x, Y: y}
	if want := gamemath.EnemySpawn(playfield.SceneWidth, playfield.SceneHeight, w); spawn != want {
		logging.L().Warn("enemy spawn differs from the patrol's usual start",
			zap.Float64("x", x), zap.Float64("y", y),
			zap.Float64("expectedX", want.X), zap.Float64("expectedY", want.Y),
		)
	}

	schedule := gamemath.EnemyPatrolFrom(
		spawn,
		playfield.Playable,
		w, h,
		gamemath.PatrolTiming{
			LegDuration:   cfg.Enemy.LegDuration,
			PauseDuration: cfg.Enemy.PauseDuration,
		},
		func() {
			logging.L().Debug("enemy reached bottom", zap.String("actor", "enemy"))
		},
	)
	runner, err := actions.NewRunner(schedule)
	if err != nil {
		panic(fmt.Sprintf("invalid enemy patrol: %v", err))
	}
	components.Patrol.SetValue(enemy, components.PatrolData{
		Runner: runner,
	})

	return enemy
}
