package assets

import (
	"reflect"
	"testing"

	"github.com/lafriks/go-tiled"
)

func emptyTiles(n int) []*tiled.LayerTile {
	tiles := make([]*tiled.LayerTile, n)
	for i := range tiles {
		tiles[i] = &tiled.LayerTile{Nil: true}
	}
	return tiles
}

// testMap builds a 4x3 map with one tileset and one tile layer named
// layerName, placing the given tile id at grid cell (1, 0).
func testMap(layerName string, tileID uint32, tsTiles ...*tiled.TilesetTile) *tiled.Map {
	ts := &tiled.Tileset{
		Name:       "tiles",
		FirstGID:   1,
		TileWidth:  16,
		TileHeight: 16,
		Columns:    8,
		TileCount:  64,
		Image:      &tiled.Image{Source: "tiles.png"},
		Tiles:      tsTiles,
	}

	tiles := emptyTiles(4 * 3)
	tiles[1] = &tiled.LayerTile{ID: tileID, Tileset: ts}

	return &tiled.Map{
		Width:      4,
		Height:     3,
		TileWidth:  16,
		TileHeight: 16,
		Tilesets:   []*tiled.Tileset{ts},
		Layers: []*tiled.Layer{
			{Name: layerName, Tiles: tiles},
		},
	}
}

func TestBuildLevelEpochDescriptor(t *testing.T) {
	t.Parallel()

	m := testMap("Background", 10, &tiled.TilesetTile{
		ID: 10,
		Properties: tiled.Properties{
			{Name: "epoch", Type: "int", Value: "2"},
			{Name: "epoch_min", Type: "int", Value: "1"},
			{Name: "epoch_max", Type: "int", Value: "3"},
		},
	})

	level, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	if len(level.Tiles) != 1 {
		t.Fatalf("expected 1 tile placement, got %d", len(level.Tiles))
	}

	sprite := level.Tiles[0].Epoch
	if sprite == nil {
		t.Fatalf("expected an epoch descriptor")
	}
	if sprite.First != 1 || sprite.Last != 3 || sprite.Delta != 2 {
		t.Fatalf("descriptor bounds = (%d, %d, %d), want (1, 3, 2)", sprite.First, sprite.Delta, sprite.Last)
	}
	if sprite.Base != 9 {
		t.Fatalf("base = %d, want 9", sprite.Base)
	}

	// The descriptor invariant and the global-bound coverage property.
	if sprite.First > sprite.Delta || sprite.Delta > sprite.Last {
		t.Fatalf("descriptor violates first <= delta <= last: %+v", sprite)
	}
	if level.EpochMin > sprite.First-sprite.Delta {
		t.Fatalf("global min %d does not cover local bound %d", level.EpochMin, sprite.First-sprite.Delta)
	}
	if level.EpochMax < sprite.Last-sprite.Delta {
		t.Fatalf("global max %d does not cover local bound %d", level.EpochMax, sprite.Last-sprite.Delta)
	}
	if level.EpochMin != -1 || level.EpochMax != 1 {
		t.Fatalf("global bound = [%d, %d], want [-1, 1]", level.EpochMin, level.EpochMax)
	}
}

func TestBuildLevelEpochWithoutRangeIsPointRange(t *testing.T) {
	t.Parallel()

	m := testMap("Background", 4, &tiled.TilesetTile{
		ID: 4,
		Properties: tiled.Properties{
			{Name: "epoch", Type: "int", Value: "5"},
		},
	})

	level, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	sprite := level.Tiles[0].Epoch
	if sprite == nil {
		t.Fatalf("expected an epoch descriptor")
	}
	if sprite.First != 5 || sprite.Last != 5 || sprite.Delta != 5 || sprite.Base != 4 {
		t.Fatalf("descriptor = %+v, want point range at 5 with base 4", sprite)
	}
	if level.EpochMin != 0 || level.EpochMax != 0 {
		t.Fatalf("global bound = [%d, %d], want [0, 0]", level.EpochMin, level.EpochMax)
	}
}

func TestBuildLevelEpochClampedIntoDeclaredRange(t *testing.T) {
	t.Parallel()

	m := testMap("Background", 12, &tiled.TilesetTile{
		ID: 12,
		Properties: tiled.Properties{
			{Name: "epoch", Type: "int", Value: "7"},
			{Name: "epoch_min", Type: "int", Value: "1"},
			{Name: "epoch_max", Type: "int", Value: "3"},
		},
	})

	level, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	sprite := level.Tiles[0].Epoch
	if sprite.Delta != 3 {
		t.Fatalf("delta = %d, want epoch clamped to 3", sprite.Delta)
	}
	if sprite.Base != 10 {
		t.Fatalf("base = %d, want 10", sprite.Base)
	}
	// The global fold uses the declared (unclamped) epoch value.
	if level.EpochMin != -6 || level.EpochMax != 0 {
		t.Fatalf("global bound = [%d, %d], want [-6, 0]", level.EpochMin, level.EpochMax)
	}
}

func TestBuildLevelMalformedEpochTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	m := testMap("Background", 3, &tiled.TilesetTile{
		ID: 3,
		Properties: tiled.Properties{
			{Name: "epoch", Type: "string", Value: "2"},
		},
	})

	level, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	if level.Tiles[0].Epoch != nil {
		t.Fatalf("malformed epoch property should produce no descriptor")
	}
	if level.EpochMin != 0 || level.EpochMax != 0 {
		t.Fatalf("global bound should stay [0, 0], got [%d, %d]", level.EpochMin, level.EpochMax)
	}
}

func TestBuildLevelSolidLayer(t *testing.T) {
	t.Parallel()

	solid, err := BuildLevel("test", testMap("Walls", 2))
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	if !solid.Tiles[0].Solid {
		t.Fatalf("tile on the Walls layer should be solid")
	}

	decor, err := BuildLevel("test", testMap("Background", 2))
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	if decor.Tiles[0].Solid {
		t.Fatalf("tile outside the Walls layer should not be solid")
	}
}

func TestBuildLevelHazardShapes(t *testing.T) {
	t.Parallel()

	m := testMap("Background", 20, &tiled.TilesetTile{
		ID: 20,
		Properties: tiled.Properties{
			{Name: "damage", Type: "float", Value: "2.5"},
		},
		ObjectGroups: []*tiled.ObjectGroup{
			{Objects: []*tiled.Object{
				{Class: "collider", X: 2, Y: 8, Width: 12, Height: 8},
				{Class: "decoration", X: 0, Y: 0, Width: 16, Height: 16},
			}},
		},
	})

	level, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	hazards := level.Tiles[0].Hazards
	if len(hazards) != 1 {
		t.Fatalf("expected 1 hazard shape, got %d", len(hazards))
	}
	h := hazards[0]
	if h.OffsetX != 2 || h.OffsetY != 8 || h.Width != 12 || h.Height != 8 {
		t.Fatalf("hazard shape = %+v", h)
	}
	if h.Damage != 2.5 {
		t.Fatalf("hazard damage = %v, want 2.5", h.Damage)
	}
}

func TestBuildLevelDamageWithoutShapeOrWrongTypeYieldsNoHazard(t *testing.T) {
	t.Parallel()

	noShape, err := BuildLevel("test", testMap("Background", 20, &tiled.TilesetTile{
		ID: 20,
		Properties: tiled.Properties{
			{Name: "damage", Type: "float", Value: "2.5"},
		},
	}))
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	if len(noShape.Tiles[0].Hazards) != 0 {
		t.Fatalf("damage without a collision shape should yield no hazards")
	}

	wrongType, err := BuildLevel("test", testMap("Background", 20, &tiled.TilesetTile{
		ID: 20,
		Properties: tiled.Properties{
			{Name: "damage", Type: "int", Value: "2"},
		},
		ObjectGroups: []*tiled.ObjectGroup{
			{Objects: []*tiled.Object{
				{Class: "collider", X: 0, Y: 0, Width: 16, Height: 16},
			}},
		},
	}))
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	if len(wrongType.Tiles[0].Hazards) != 0 {
		t.Fatalf("mistyped damage property should read as absent")
	}
}

func TestBuildLevelAnimationFrames(t *testing.T) {
	t.Parallel()

	m := testMap("Background", 5, &tiled.TilesetTile{
		ID: 5,
		Animation: []*tiled.AnimationFrame{
			{TileID: 5, Duration: 100},
			{TileID: 6, Duration: 50},
		},
	})

	level, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	want := []Frame{{TileID: 5, DurationMs: 100}, {TileID: 6, DurationMs: 50}}
	if !reflect.DeepEqual(level.Tiles[0].Frames, want) {
		t.Fatalf("frames = %+v, want %+v", level.Tiles[0].Frames, want)
	}
}

func TestBuildLevelObjects(t *testing.T) {
	t.Parallel()

	m := testMap("Background", 2)
	m.ObjectGroups = []*tiled.ObjectGroup{
		{Objects: []*tiled.Object{
			{ID: 1, Class: "player_start", X: 10, Y: 20},
			{ID: 2, Class: "player_start", X: 30, Y: 40},
			{ID: 3, Class: "teleport", X: 0, Y: 0, Width: 16, Height: 32,
				Properties: tiled.Properties{{Name: "dst", Type: "object", Value: "4"}}},
			{ID: 4, Class: "teleport", X: 48, Y: 0, Width: 16, Height: 32,
				Properties: tiled.Properties{{Name: "dst", Type: "object", Value: "3"}}},
			{ID: 5, Class: "teleport", X: 32, Y: 0, Width: 16, Height: 32},
			{ID: 6, Class: "ladder", X: 16, Y: 0, Width: 8, Height: 48},
			{ID: 7, Class: "level_end", X: 40, Y: 0, Width: 16, Height: 16},
			{ID: 8, Class: "torch", X: 0, Y: 0, Width: 8, Height: 8},
		}},
	}

	level, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	if level.PlayerStart == nil || level.PlayerStart.X != 30 || level.PlayerStart.Y != 40 {
		t.Fatalf("duplicate player_start should keep the last one, got %+v", level.PlayerStart)
	}

	if len(level.Teleporters) != 2 {
		t.Fatalf("expected 2 teleporters (the destination-less one skipped), got %d", len(level.Teleporters))
	}
	if level.Teleporters[0].ID != 3 || level.Teleporters[0].DstID != 4 {
		t.Fatalf("teleporter 0 = %+v", level.Teleporters[0])
	}
	if level.Teleporters[1].ID != 4 || level.Teleporters[1].DstID != 3 {
		t.Fatalf("teleporter 1 = %+v", level.Teleporters[1])
	}

	if len(level.Ladders) != 1 || len(level.Goals) != 1 {
		t.Fatalf("ladders = %d, goals = %d, want 1 and 1", len(level.Ladders), len(level.Goals))
	}
}

func TestBuildLevelRoundTrip(t *testing.T) {
	t.Parallel()

	m := testMap("Walls", 10, &tiled.TilesetTile{
		ID: 10,
		Properties: tiled.Properties{
			{Name: "epoch", Type: "int", Value: "1"},
			{Name: "epoch_max", Type: "int", Value: "2"},
		},
	})

	first, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	second, err := BuildLevel("test", m)
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rebuilding the same document produced a different level")
	}
}
