package systems

import (
	"fmt"

	"github.com/automoto/followtheleader/components"
	cfg "github.com/automoto/followtheleader/config"
	"github.com/automoto/followtheleader/fonts"
	"github.com/automoto/followtheleader/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const targetMarkerSize = 16

// DrawDebug outlines the playable rect, marks the touch target and prints the
// zombie's kinematic state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	entry, ok := sceneEntry(ecs)
	if !ok {
		return
	}
	playfield := components.Playfield.Get(entry)
	touch := components.Touch.Get(entry)
	clock := components.Clock.Get(entry)

	r := playfield.Playable
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 8, cfg.Debug.PlayableColor, false)

	if touch.Set {
		half := float32(targetMarkerSize) / 2
		vector.FillRect(screen, float32(touch.Target.X)-half, float32(touch.Target.Y)-half, targetMarkerSize, targetMarkerSize, cfg.Debug.TargetColor, false)
	}

	zombieEntry, ok := tags.Zombie.First(ecs.World)
	if !ok {
		return
	}
	actor := components.Actor.Get(zombieEntry)
	motion := components.Motion.Get(zombieEntry)
	contact := components.Contact.Get(zombieEntry)

	face := fonts.Debug.Get()
	line := fmt.Sprintf("dt %.3fs  pos (%.0f, %.0f)  heading %.2f  vel (%.0f, %.0f)  hits %d",
		clock.DT, actor.Position.X, actor.Position.Y, actor.Heading,
		motion.Velocity.X, motion.Velocity.Y, contact.Hits)
	height := face.Metrics().Height.Ceil()
	text.Draw(screen, line, face, int(r.X)+16, int(r.Y)+16+height, cfg.Debug.TextColor)
}
