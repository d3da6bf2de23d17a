package systems

import (
	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVictory flags level completion when the player touches a goal
// zone.
func UpdateVictory(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	if obj.Check(0, 0, tags.ResolvGoal) == nil {
		return
	}
	if stateEntry, ok := components.GameState.First(ecs.World); ok {
		components.GameState.Get(stateEntry).LevelComplete = true
	}
}
