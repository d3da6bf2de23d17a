package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowforge/timewheel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTileAnimations advances every animated tile by one update
// tick. Tiles that also carry an epoch descriptor are left to the
// projector; their texture is epoch-driven.
func UpdateTileAnimations(ecs *ecs.ECS) {
	dtMs := 1000.0 / float64(ebiten.TPS())

	components.TileAnimation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Tile) {
			// The player's walk cycle is ticked by UpdatePlayer, only
			// while moving.
			return
		}
		anim := components.TileAnimation.Get(e)
		id := anim.Tick(dtMs)

		if e.HasComponent(components.EpochSprite) {
			return
		}
		tile := components.Tile.Get(e)
		if tile.TextureIndex != id {
			tile.TextureIndex = id
		}
	})
}
