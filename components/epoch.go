package components

import (
	"github.com/hollowforge/timewheel/assets"
	"github.com/yohamta/donburi"
)

// EpochData is the level-wide epoch state machine: the current value,
// the bound it is clamped to, and a dirty flag the projector consumes.
type EpochData struct {
	Min, Max int
	Cur      int
	Dirty    bool
}

// Set moves the current epoch to v clamped into [Min, Max] and marks
// the state dirty only when the clamped value actually changed.
func (e *EpochData) Set(v int) {
	if v < e.Min {
		v = e.Min
	} else if v > e.Max {
		v = e.Max
	}
	if v == e.Cur {
		return
	}
	e.Cur = v
	e.Dirty = true
}

// EpochSpriteData carries a tile's epoch descriptor.
type EpochSpriteData struct {
	assets.EpochSprite
}

var Epoch = donburi.NewComponentType[EpochData]()
var EpochSprite = donburi.NewComponentType[EpochSpriteData]()
