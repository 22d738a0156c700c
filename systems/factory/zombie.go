package factory

import (
	"github.com/automoto/followtheleader/archetypes"
	"github.com/automoto/followtheleader/assets"
	"github.com/automoto/followtheleader/components"
	cfg "github.com/automoto/followtheleader/config"
	"github.com/automoto/followtheleader/mathutil"
	"github.com/automoto/followtheleader/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateZombie(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	zombie := archetypes.Zombie.Spawn(ecs)

	img := assets.GetImage(assets.Zombie)
	w := float64(cfg.Zombie.Width) * cfg.Zombie.Scale
	h := float64(cfg.Zombie.Height) * cfg.Zombie.Scale

	components.Actor.SetValue(zombie, components.ActorData{
		Position: mathutil.Point{X: x, Y: y},
	})
	components.Motion.SetValue(zombie, components.MotionData{
		Speed:       cfg.Zombie.MovePointsPerSec,
		RotateSpeed: cfg.Zombie.RotateRadiansPerSec,
	})
	components.Sprite.SetValue(zombie, components.SpriteData{
		Image:  img,
		PivotX: float64(img.Bounds().Dx()) / 2,
		PivotY: float64(img.Bounds().Dy()) / 2,
		Scale:  cfg.Zombie.Scale,
	})

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvZombie)
	obj.Data = zombie
	components.Object.SetValue(zombie, components.ObjectData{Object: obj})

	return zombie
}
