package components

import "github.com/yohamta/donburi"

// DamageData is the damage a hazard sensor deals when the player's
// overlap with it begins.
type DamageData struct {
	Amount float64
}

var Damage = donburi.NewComponentType[DamageData]()
