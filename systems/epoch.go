package systems

import (
	"github.com/hollowforge/timewheel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEpochProjection pushes the current epoch onto every
// epoch-bearing tile. The pass runs only when the epoch changed since
// the last projection, and skips writes that would not change a tile.
func UpdateEpochProjection(ecs *ecs.ECS) {
	epochEntry, ok := components.Epoch.First(ecs.World)
	if !ok {
		return
	}
	epoch := components.Epoch.Get(epochEntry)
	if !epoch.Dirty {
		return
	}
	epoch.Dirty = false

	components.EpochSprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.EpochSprite.Get(e)
		tile := components.Tile.Get(e)

		tileEpoch := epoch.Cur + sprite.Delta
		visible := sprite.First <= tileEpoch && tileEpoch <= sprite.Last
		if tile.Visible != visible {
			tile.Visible = visible
		}
		if !visible {
			return
		}

		tex := sprite.Base + uint32(tileEpoch-sprite.First)
		if tile.TextureIndex != tex {
			tile.TextureIndex = tex
		}
	})
}
