package components

import (
	"github.com/hollowforge/timewheel/assets"
	"github.com/yohamta/donburi"
)

// TileAnimationData cycles a tile through frames of individually
// varying durations. Clock counts milliseconds spent on the current
// frame.
type TileAnimationData struct {
	Frames []assets.Frame
	Index  int
	Clock  float64
}

// Tick advances the clock by dtMs milliseconds, consuming as many
// frames as the elapsed time covers, and returns the tile id of the
// frame that is current afterwards. Leftover time carries into the new
// frame.
func (a *TileAnimationData) Tick(dtMs float64) uint32 {
	if len(a.Frames) == 0 {
		return 0
	}

	a.Clock += dtMs
	for {
		d := float64(a.Frames[a.Index].DurationMs)
		if d <= 0 || a.Clock < d {
			break
		}
		a.Clock -= d
		a.Index = (a.Index + 1) % len(a.Frames)
	}
	return a.Frames[a.Index].TileID
}

// UniformFrames builds a synthetic frame list of count frames starting
// at first, all with the same duration. Sprite-sheet cycles (the
// player walk) share the tile clock this way.
func UniformFrames(first uint32, count, durationMs int) []assets.Frame {
	frames := make([]assets.Frame, count)
	for i := range frames {
		frames[i] = assets.Frame{TileID: first + uint32(i), DurationMs: durationMs}
	}
	return frames
}

var TileAnimation = donburi.NewComponentType[TileAnimationData]()
