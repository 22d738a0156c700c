package systems

import (
	"github.com/automoto/followtheleader/components"
	"github.com/automoto/followtheleader/shared/gamemath"
	"github.com/automoto/followtheleader/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZombies moves each zombie toward the touch target, bounces it off the
// playfield bounds and turns it toward its direction of travel.
// Must run after UpdateClock.
func UpdateZombies(ecs *ecs.ECS) {
	entry, ok := sceneEntry(ecs)
	if !ok {
		return
	}
	touch := components.Touch.Get(entry)
	playfield := components.Playfield.Get(entry)
	dt := components.Clock.Get(entry).DT

	tags.Zombie.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		motion := components.Motion.Get(e)

		step := gamemath.StepActor(
			actor.Position, actor.Heading, motion.Velocity,
			touch.Target, touch.Set, playfield.Bounds,
			motion.Speed, motion.RotateSpeed, dt,
		)
		actor.Position = step.Position
		actor.Heading = step.Heading
		motion.Velocity = step.Velocity
		motion.Moved = step.Moved
	})
}
