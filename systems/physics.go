package systems

import (
	"github.com/hollowforge/timewheel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		if physics.SpeedX > physics.Friction {
			physics.SpeedX -= physics.Friction
		} else if physics.SpeedX < -physics.Friction {
			physics.SpeedX += physics.Friction
		} else {
			physics.SpeedX = 0
		}

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		climbing := false
		if e.HasComponent(components.Player) {
			climbing = components.Player.Get(e).Climbing
		}
		if !climbing {
			physics.SpeedY += physics.Gravity
		}
	})
}
