package factory

import (
	"github.com/automoto/followtheleader/archetypes"
	"github.com/automoto/followtheleader/assets"
	"github.com/automoto/followtheleader/components"
	"github.com/automoto/followtheleader/mathutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackground centres the backdrop on the scene. It lives on the background
// layer so it is drawn before everything else.
func CreateBackground(ecs *ecs.ECS, width, height int) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)

	img := assets.GetBackground(width, height)
	components.Actor.SetValue(bg, components.ActorData{
		Position: mathutil.Point{X: float64(width) / 2, Y: float64(height) / 2},
	})
	components.Sprite.SetValue(bg, components.SpriteData{
		Image:  img,
		PivotX: float64(img.Bounds().Dx()) / 2,
		PivotY: float64(img.Bounds().Dy()) / 2,
		Scale:  1,
	})

	return bg
}
