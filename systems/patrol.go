package systems

import (
	"github.com/automoto/followtheleader/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrol plays each patrol schedule forward by the frame's dt.
func UpdatePatrol(ecs *ecs.ECS) {
	dt := FrameDT(ecs)
	if dt <= 0 {
		return
	}

	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		if patrol.Runner == nil || patrol.Runner.Done() {
			return
		}
		actor := components.Actor.Get(e)
		actor.Position = actor.Position.Add(patrol.Runner.Update(dt))
	})
}
