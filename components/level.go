package components

import (
	"github.com/hollowforge/timewheel/assets"
	"github.com/yohamta/donburi"
)

// TileKey addresses one instantiated tile by layer and grid cell.
type TileKey struct {
	LayerIndex   int
	GridX, GridY int
}

type LevelData struct {
	Current *assets.Level
	Name    string

	// Tiles maps every instantiated tile cell to its entity.
	Tiles map[TileKey]donburi.Entity
}

var Level = donburi.NewComponentType[LevelData]()
