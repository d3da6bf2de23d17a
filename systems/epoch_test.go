package systems

import (
	"testing"

	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newProjectionWorld(t *testing.T, min, max int, sprite assets.EpochSprite) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateEpoch(e, min, max)
	tile := factory.CreateTile(e, &assets.TilePlacement{
		GridX:  1,
		GridY:  1,
		TileID: sprite.Base,
		Epoch:  &sprite,
	})
	return e, tile
}

func setEpoch(t *testing.T, e *ecs.ECS, v int) {
	t.Helper()
	entry, ok := components.Epoch.First(e.World)
	if !ok {
		t.Fatalf("no epoch state in world")
	}
	components.Epoch.Get(entry).Set(v)
}

func TestProjectionVisibilityWindow(t *testing.T) {
	t.Parallel()

	e, tile := newProjectionWorld(t, -3, 3, assets.EpochSprite{
		Base: 10, Delta: 0, First: -1, Last: 1,
	})

	cases := []struct {
		cur     int
		visible bool
		tex     uint32
	}{
		{-2, false, 0},
		{-1, true, 10},
		{0, true, 11},
		{1, true, 12},
		{2, false, 0},
	}
	for _, c := range cases {
		setEpoch(t, e, c.cur)
		UpdateEpochProjection(e)

		td := components.Tile.Get(tile)
		if td.Visible != c.visible {
			t.Fatalf("cur=%d: visible=%v, want %v", c.cur, td.Visible, c.visible)
		}
		if c.visible && td.TextureIndex != c.tex {
			t.Fatalf("cur=%d: texture=%d, want %d", c.cur, td.TextureIndex, c.tex)
		}
	}
}

func TestProjectionIsNoOpWhenClean(t *testing.T) {
	t.Parallel()

	e, tile := newProjectionWorld(t, -1, 1, assets.EpochSprite{
		Base: 10, Delta: 0, First: -1, Last: 1,
	})

	UpdateEpochProjection(e)
	td := components.Tile.Get(tile)
	if td.TextureIndex != 11 {
		t.Fatalf("first projection texture = %d, want 11", td.TextureIndex)
	}

	// Nothing changed the epoch; a later pass must not touch tiles.
	td.TextureIndex = 999
	UpdateEpochProjection(e)
	if td.TextureIndex != 999 {
		t.Fatalf("clean projection rewrote a tile")
	}
}

func TestProjectionShiftedTileUsesItsDelta(t *testing.T) {
	t.Parallel()

	// A tile authored at epoch 2 with range [1, 3]: its apparent value
	// is cur+2, so it is visible for cur in [-1, 1].
	e, tile := newProjectionWorld(t, -1, 1, assets.EpochSprite{
		Base: 9, Delta: 2, First: 1, Last: 3,
	})

	setEpoch(t, e, -1)
	UpdateEpochProjection(e)
	td := components.Tile.Get(tile)
	if !td.Visible || td.TextureIndex != 9 {
		t.Fatalf("cur=-1: visible=%v texture=%d, want visible with texture 9", td.Visible, td.TextureIndex)
	}

	setEpoch(t, e, 1)
	UpdateEpochProjection(e)
	if !td.Visible || td.TextureIndex != 11 {
		t.Fatalf("cur=1: visible=%v texture=%d, want visible with texture 11", td.Visible, td.TextureIndex)
	}
}
