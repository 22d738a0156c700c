package factory

import (
	"github.com/automoto/followtheleader/archetypes"
	"github.com/automoto/followtheleader/components"
	cfg "github.com/automoto/followtheleader/config"
	"github.com/automoto/followtheleader/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene spawns the scene-wide state: playfield geometry, frame clock and touch target.
func CreateScene(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	scene := archetypes.Scene.Spawn(ecs)

	playable := gamemath.PlayableRect(width, height, cfg.Playfield.MaxAspectRatio)
	components.Playfield.SetValue(scene, components.PlayfieldData{
		SceneWidth:  width,
		SceneHeight: height,
		Playable:    playable,
		Bounds:      gamemath.MovementBounds(width, playable),
	})
	components.Clock.SetValue(scene, components.ClockData{
		FrameClock: gamemath.FrameClock{MaxDT: cfg.Clock.MaxDT},
	})

	return scene
}
