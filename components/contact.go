package components

import "github.com/yohamta/donburi"

type ContactData struct {
	TouchingEnemy bool
	Hits          int
}

var Contact = donburi.NewComponentType[ContactData]()
