package factory

import (
	"log"

	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnLevel instantiates a built level into the world: the collision
// space, the epoch state, every tile with its colliders and sensors,
// the paired teleporters, and finally the player and camera.
func SpawnLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	tileIndex := make(map[components.TileKey]donburi.Entity, len(level.Tiles))
	components.Level.SetValue(entry, components.LevelData{
		Current: level,
		Name:    level.Name,
		Tiles:   tileIndex,
	})

	CreateSpace(ecs, level.Width, level.Height, cfg.Level.CellWidth, cfg.Level.CellHeight)
	CreateEpoch(ecs, level.EpochMin, level.EpochMax)
	archetypes.GameState.Spawn(ecs)

	tw := float64(level.TileWidth)
	th := float64(level.TileHeight)
	for i := range level.Tiles {
		t := &level.Tiles[i]
		tile := CreateTile(ecs, t)
		tileIndex[components.TileKey{
			LayerIndex: t.LayerIndex,
			GridX:      t.GridX,
			GridY:      t.GridY,
		}] = tile.Entity()

		x := float64(t.GridX) * tw
		y := float64(t.GridY) * th
		if t.Solid {
			CreateWall(ecs, x, y, tw, th)
		}
		for _, hz := range t.Hazards {
			CreateHazard(ecs, x+hz.OffsetX, y+hz.OffsetY, hz.Width, hz.Height, hz.Damage)
		}
	}

	for _, tp := range level.Teleporters {
		CreateTeleporter(ecs, tp)
	}
	ResolveTeleporters(ecs)

	for _, z := range level.Ladders {
		CreateLadder(ecs, z)
	}
	for _, z := range level.Goals {
		CreateGoal(ecs, z)
	}

	if sp := level.PlayerStart; sp != nil {
		CreatePlayer(ecs, sp.X, sp.Y)
	} else {
		log.Printf("[level] %s has no player_start, spawning at the map center", level.Name)
		CreatePlayer(ecs, float64(level.Width)/2, float64(level.Height)/2)
	}
	CreateCamera(ecs)

	return entry
}
