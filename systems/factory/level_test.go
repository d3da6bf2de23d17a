package factory

import (
	"testing"

	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/yohamta/donburi"
)

func testLevel() *assets.Level {
	return &assets.Level{
		Name:       "test",
		Width:      64,
		Height:     48,
		TileWidth:  16,
		TileHeight: 16,
		Tiles: []assets.TilePlacement{
			{GridX: 0, GridY: 0, LayerIndex: 0, TileID: 1},
			{GridX: 1, GridY: 0, LayerIndex: 0, TileID: 2},
			{GridX: 1, GridY: 1, LayerIndex: 1, TileID: 3, Solid: true},
			{GridX: 2, GridY: 1, LayerIndex: 1, TileID: 5, Frames: []assets.Frame{
				{TileID: 5, DurationMs: 100},
				{TileID: 6, DurationMs: 50},
			}},
		},
		PlayerStart: &assets.SpawnPoint{X: 8, Y: 32},
	}
}

func TestSpawnLevelIndexesEveryTileByLayerAndCell(t *testing.T) {
	t.Parallel()

	e := newTestECS()
	entry := SpawnLevel(e, testLevel())

	index := components.Level.Get(entry).Tiles
	if len(index) != 4 {
		t.Fatalf("tile index has %d entries, want 4", len(index))
	}

	ent, ok := index[components.TileKey{LayerIndex: 1, GridX: 1, GridY: 1}]
	if !ok {
		t.Fatalf("tile at layer 1, cell (1,1) missing from index")
	}
	tile := components.Tile.Get(e.World.Entry(ent))
	if tile.TextureIndex != 3 {
		t.Fatalf("indexed tile has texture %d, want 3", tile.TextureIndex)
	}

	if _, ok := index[components.TileKey{LayerIndex: 0, GridX: 1, GridY: 1}]; ok {
		t.Fatalf("index must distinguish layers for the same cell")
	}
}

func TestSpawnLevelCreatesWallsForSolidTiles(t *testing.T) {
	t.Parallel()

	e := newTestECS()
	SpawnLevel(e, testLevel())

	walls := 0
	tags.Wall.Each(e.World, func(*donburi.Entry) { walls++ })
	if walls != 1 {
		t.Fatalf("spawned %d walls, want 1", walls)
	}
}

func TestCreatePlayerAttachesUniformWalkFrames(t *testing.T) {
	t.Parallel()

	e := newTestECS()
	CreateSpace(e, 64, 48, 16, 16)
	player := CreatePlayer(e, 32, 32)

	anim := components.TileAnimation.Get(player)
	if len(anim.Frames) != cfg.Player.WalkFrameCount {
		t.Fatalf("walk cycle has %d frames, want %d", len(anim.Frames), cfg.Player.WalkFrameCount)
	}
	for i, f := range anim.Frames {
		if f.TileID != uint32(i) || f.DurationMs != cfg.Player.WalkFrameMs {
			t.Fatalf("walk frame %d = %+v, want sheet frame %d at %dms", i, f, i, cfg.Player.WalkFrameMs)
		}
	}
	if anim.Index != 0 || anim.Clock != 0 {
		t.Fatalf("walk cycle should start at rest, got (index %d, clock %v)", anim.Index, anim.Clock)
	}
}

func TestCreateTileSeedsAnimationWithinFrameBounds(t *testing.T) {
	t.Parallel()

	frames := []assets.Frame{
		{TileID: 5, DurationMs: 100},
		{TileID: 6, DurationMs: 50},
	}

	e := newTestECS()
	for i := 0; i < 50; i++ {
		tile := CreateTile(e, &assets.TilePlacement{GridX: i, Frames: frames})
		anim := components.TileAnimation.Get(tile)
		if anim.Index < 0 || anim.Index >= len(frames) {
			t.Fatalf("seeded frame index %d out of range", anim.Index)
		}
		d := float64(frames[anim.Index].DurationMs)
		if anim.Clock < 0 || anim.Clock >= d {
			t.Fatalf("seeded clock %.2f outside frame duration %.0f", anim.Clock, d)
		}
	}
}
