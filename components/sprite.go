package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the visual handle of an actor. It is drawn centred on the actor's
// position and rotated by its heading.
type SpriteData struct {
	Image  *ebiten.Image
	PivotX float64
	PivotY float64
	Scale  float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
