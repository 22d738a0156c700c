package tags

import "github.com/yohamta/donburi"

var (
	Zombie     = donburi.NewTag().SetName("Zombie")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Background = donburi.NewTag().SetName("Background")
)

// Resolv tags for overlap checks
const (
	ResolvZombie = "Zombie"
	ResolvEnemy  = "Enemy"
)
