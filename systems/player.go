package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns buffered input into movement intent. Collision
// resolution happens later in UpdateCollisions.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	input := components.Input.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	anim := components.TileAnimation.Get(playerEntry)

	moving := false
	if input.Pressed(cfg.ActionMoveLeft) {
		physics.SpeedX -= cfg.Player.Acceleration
		player.FacingX = -1
		moving = true
	}
	if input.Pressed(cfg.ActionMoveRight) {
		physics.SpeedX += cfg.Player.Acceleration
		player.FacingX = 1
		moving = true
	}

	player.OnLadder = obj.Check(0, 0, tags.ResolvLadder) != nil
	if !player.OnLadder {
		player.Climbing = false
	}

	if player.OnLadder {
		up := input.Pressed(cfg.ActionClimbUp)
		down := input.Pressed(cfg.ActionClimbDown)
		if up || down {
			player.Climbing = true
		}
		if player.Climbing {
			physics.SpeedY = 0
			if up {
				physics.SpeedY = -cfg.Player.ClimbSpeed
			}
			if down {
				physics.SpeedY = cfg.Player.ClimbSpeed
			}
		}
	}

	if input.JustPressed(cfg.ActionJump) && (physics.OnGround != nil || player.Climbing) {
		physics.SpeedY = -cfg.Player.JumpSpeed
		player.Climbing = false
	}

	if moving {
		anim.Tick(1000.0 / float64(ebiten.TPS()))
	} else {
		anim.Index = 0
		anim.Clock = 0
	}

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
}
