package archetypes

import (
	"github.com/automoto/followtheleader/components"
	"github.com/automoto/followtheleader/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	LayerBackground ecs.LayerID = iota
	LayerActors
	LayerDebug
)

var (
	Zombie = newArchetype(
		LayerActors,
		tags.Zombie,
		components.Actor,
		components.Motion,
		components.Sprite,
		components.Object,
		components.Contact,
	)
	Enemy = newArchetype(
		LayerActors,
		tags.Enemy,
		components.Actor,
		components.Sprite,
		components.Object,
		components.Patrol,
	)
	Background = newArchetype(
		LayerBackground,
		tags.Background,
		components.Actor,
		components.Sprite,
	)
	Scene = newArchetype(
		LayerBackground,
		components.Playfield,
		components.Clock,
		components.Touch,
	)
	Space = newArchetype(
		LayerBackground,
		components.Space,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
