package factory

import (
	"math/rand"

	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile spawns the render entity for one tile placement. Tiles
// with an epoch descriptor or an animation get the extra components
// the projector and the animation clock drive; the first projector
// pass settles their initial visibility and texture.
func CreateTile(ecs *ecs.ECS, t *assets.TilePlacement) *donburi.Entry {
	extra := []donburi.IComponentType{}
	if t.Epoch != nil {
		extra = append(extra, components.EpochSprite)
	}
	if len(t.Frames) > 0 {
		extra = append(extra, components.TileAnimation)
	}

	tile := archetypes.Tile.Spawn(ecs, extra...)

	components.Tile.SetValue(tile, components.TileData{
		GridX:        t.GridX,
		GridY:        t.GridY,
		LayerIndex:   t.LayerIndex,
		TilesetIndex: t.TilesetIndex,
		TextureIndex: t.TileID,
		FlipH:        t.FlipH,
		FlipV:        t.FlipV,
		Visible:      true,
	})
	if t.Epoch != nil {
		components.EpochSprite.SetValue(tile, components.EpochSpriteData{EpochSprite: *t.Epoch})
	}
	if len(t.Frames) > 0 {
		// Random start phase so identical tiles don't animate in lockstep.
		idx := rand.Intn(len(t.Frames))
		components.TileAnimation.SetValue(tile, components.TileAnimationData{
			Frames: t.Frames,
			Index:  idx,
			Clock:  rand.Float64() * float64(t.Frames[idx].DurationMs),
		})
	}

	return tile
}
