package systems

import (
	"github.com/automoto/followtheleader/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock. Must run before any movement system.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := sceneEntry(ecs)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Tick(clock.Now)
}
