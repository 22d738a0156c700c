package systems

import (
	"github.com/automoto/followtheleader/components"
	"github.com/automoto/followtheleader/logging"
	"github.com/automoto/followtheleader/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCollisions moves every collision object onto its actor and records when a
// zombie starts overlapping an enemy.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Actor) {
			return
		}
		obj := components.Object.Get(e)
		actor := components.Actor.Get(e)
		obj.X = actor.Position.X - obj.W/2
		obj.Y = actor.Position.Y - obj.H/2
		obj.Update()
	})

	tags.Zombie.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		contact := components.Contact.Get(e)

		touching := obj.Check(0, 0, tags.ResolvEnemy) != nil
		if touching && !contact.TouchingEnemy {
			contact.Hits++
			actor := components.Actor.Get(e)
			logging.L().Info("zombie hit enemy",
				zap.Float64("x", actor.Position.X),
				zap.Float64("y", actor.Position.Y),
				zap.Int("hits", contact.Hits),
			)
		}
		contact.TouchingEnemy = touching
	})
}
