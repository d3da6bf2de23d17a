package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Damage lowers health, flooring at zero.
func (h *HealthData) Damage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

var Health = donburi.NewComponentType[HealthData]()
