package components

import (
	"github.com/automoto/followtheleader/mathutil"
	"github.com/yohamta/donburi"
)

// ActorData is the kinematic state of a simulated sprite. Position is the sprite's
// centre in scene coordinates; Heading is in radians.
type ActorData struct {
	Position mathutil.Point
	Heading  float64
}

var Actor = donburi.NewComponentType[ActorData]()
