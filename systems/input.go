package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the player's input
// buffers. Must run before UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	for e := range components.Input.Iter(ecs.World) {
		input := components.Input.Get(e)

		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
					break
				}
			}
		}
	}
}
