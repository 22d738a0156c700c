package components

import (
	"github.com/automoto/followtheleader/mathutil"
	"github.com/yohamta/donburi"
)

// TouchData is the last point the player touched. Set stays false until the first touch.
type TouchData struct {
	Target mathutil.Point
	Set    bool
}

var Touch = donburi.NewComponentType[TouchData]()
