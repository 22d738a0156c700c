package components

import (
	"github.com/automoto/followtheleader/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ClockData struct {
	Now float64 // timestamp of the frame being simulated, seconds
	gamemath.FrameClock
}

var Clock = donburi.NewComponentType[ClockData]()
