package components

import (
	"github.com/automoto/followtheleader/mathutil"
	"github.com/yohamta/donburi"
)

type MotionData struct {
	Velocity    mathutil.Point // units per second; zero means at rest
	Speed       float64        // units per second when chasing
	RotateSpeed float64        // radians per second
	Moved       bool           // true when the last frame integrated velocity
}

var Motion = donburi.NewComponentType[MotionData]()
