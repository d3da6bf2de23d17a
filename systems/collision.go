package systems

import (
	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxFallSpeed keeps fast falls from tunneling through thin walls.
const maxFallSpeed = 10.0

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)
		obj.Update()
	})
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
		}
	}
	object.X += dx
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil

	dy := physics.SpeedY
	if dy > maxFallSpeed {
		dy = maxFallSpeed
	}

	// Check one extra pixel downward so standing still keeps ground
	// contact.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		contact := check.ContactWithObject(solids[0])
		dy = contact.Y()
		if physics.SpeedY >= 0 {
			physics.OnGround = solids[0]
		}
		physics.SpeedY = 0
	}
	object.Y += dy
}
