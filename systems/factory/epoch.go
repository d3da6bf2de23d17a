package factory

import (
	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEpoch spawns the level-wide epoch state at epoch zero, dirty
// so the first projector pass settles every tile.
func CreateEpoch(ecs *ecs.ECS, min, max int) *donburi.Entry {
	epoch := archetypes.Epoch.Spawn(ecs)
	components.Epoch.SetValue(epoch, components.EpochData{
		Min:   min,
		Max:   max,
		Cur:   0,
		Dirty: true,
	})
	return epoch
}
