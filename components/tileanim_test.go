package components

import (
	"testing"

	"github.com/hollowforge/timewheel/assets"
)

func TestTileAnimationTickCarriesLeftoverTime(t *testing.T) {
	t.Parallel()

	anim := TileAnimationData{
		Frames: []assets.Frame{
			{TileID: 5, DurationMs: 100},
			{TileID: 6, DurationMs: 50},
		},
	}

	if got := anim.Tick(120); got != 6 {
		t.Fatalf("Tick(120) = %d, want 6", got)
	}
	if anim.Index != 1 {
		t.Fatalf("index = %d, want 1", anim.Index)
	}
	if anim.Clock != 20 {
		t.Fatalf("clock = %v, want 20", anim.Clock)
	}
}

func TestTileAnimationTickConsumesMultipleFrames(t *testing.T) {
	t.Parallel()

	anim := TileAnimationData{
		Frames: []assets.Frame{
			{TileID: 5, DurationMs: 100},
			{TileID: 6, DurationMs: 50},
			{TileID: 7, DurationMs: 25},
		},
	}

	// 100 + 50 + 25 + 10: a full cycle plus 10ms into frame 0 again.
	if got := anim.Tick(185); got != 5 {
		t.Fatalf("Tick(185) = %d, want 5", got)
	}
	if anim.Index != 0 || anim.Clock != 10 {
		t.Fatalf("state = (index %d, clock %v), want (0, 10)", anim.Index, anim.Clock)
	}
}

func TestTileAnimationTickStaysWithinFrame(t *testing.T) {
	t.Parallel()

	anim := TileAnimationData{
		Frames: []assets.Frame{
			{TileID: 5, DurationMs: 100},
			{TileID: 6, DurationMs: 50},
		},
	}

	if got := anim.Tick(40); got != 5 {
		t.Fatalf("Tick(40) = %d, want 5", got)
	}
	if got := anim.Tick(40); got != 5 {
		t.Fatalf("second Tick(40) = %d, want 5", got)
	}
	if got := anim.Tick(40); got != 6 {
		t.Fatalf("third Tick(40) = %d, want 6", got)
	}
	if anim.Clock != 20 {
		t.Fatalf("clock = %v, want 20", anim.Clock)
	}
}

func TestUniformFramesDriveAWalkCycle(t *testing.T) {
	t.Parallel()

	anim := TileAnimationData{Frames: UniformFrames(0, 2, 100)}
	for i, f := range anim.Frames {
		if f.TileID != uint32(i) || f.DurationMs != 100 {
			t.Fatalf("frame %d = %+v, want tile %d at 100ms", i, f, i)
		}
	}

	if got := anim.Tick(120); got != 1 {
		t.Fatalf("Tick(120) = %d, want 1", got)
	}
	if got := anim.Tick(100); got != 0 {
		t.Fatalf("cycle should wrap back to frame 0, got %d", got)
	}
}

func TestTileAnimationTickEmptyAndZeroDuration(t *testing.T) {
	t.Parallel()

	var empty TileAnimationData
	if got := empty.Tick(16); got != 0 {
		t.Fatalf("empty animation Tick = %d, want 0", got)
	}

	stuck := TileAnimationData{
		Frames: []assets.Frame{{TileID: 9, DurationMs: 0}},
	}
	if got := stuck.Tick(1000); got != 9 {
		t.Fatalf("zero-duration frame Tick = %d, want 9", got)
	}
}
