package components

import (
	"github.com/automoto/followtheleader/actions"
	"github.com/yohamta/donburi"
)

type PatrolData struct {
	Runner *actions.Runner
}

var Patrol = donburi.NewComponentType[PatrolData]()
