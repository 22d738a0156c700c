package components

import (
	"github.com/automoto/followtheleader/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayfieldData is computed once when the scene is built.
type PlayfieldData struct {
	SceneWidth  float64
	SceneHeight float64
	Playable    gamemath.Rect // band visible on every supported aspect ratio
	Bounds      gamemath.Rect // where actors bounce: full width, playable height
}

var Playfield = donburi.NewComponentType[PlayfieldData]()
