package systems

import (
	"github.com/automoto/followtheleader/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sceneEntry returns the entity holding the playfield, clock and touch target.
func sceneEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Playfield.First(ecs.World)
}

// SetFrameTime records the timestamp, in seconds, of the frame about to be simulated.
// UpdateClock turns it into the frame's dt.
func SetFrameTime(ecs *ecs.ECS, now float64) {
	entry, ok := sceneEntry(ecs)
	if !ok {
		return
	}
	components.Clock.Get(entry).Now = now
}

// FrameDT is the elapsed time of the current frame, in seconds.
func FrameDT(ecs *ecs.ECS) float64 {
	entry, ok := sceneEntry(ecs)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DT
}
