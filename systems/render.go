package systems

import (
	"github.com/automoto/followtheleader/components"
	"github.com/automoto/followtheleader/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground renders the backdrop. It is registered on the lowest layer.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Background.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, components.Actor.Get(e), components.Sprite.Get(e))
	})
}

// DrawActors renders zombies and enemies centred on their position, rotated by heading.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, components.Actor.Get(e), components.Sprite.Get(e))
	})
	tags.Zombie.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, components.Actor.Get(e), components.Sprite.Get(e))
	})
}

func drawSprite(screen *ebiten.Image, actor *components.ActorData, sprite *components.SpriteData) {
	if sprite.Image == nil {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Translate to pivot (center of sprite)
	drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)

	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	drawOp.GeoM.Scale(scale, scale)

	// Rotate
	drawOp.GeoM.Rotate(actor.Heading)

	drawOp.GeoM.Translate(actor.Position.X, actor.Position.Y)

	screen.DrawImage(sprite.Image, drawOp)
}
