package systems

import (
	"math"

	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Current == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.Current.Width)
	levelHeight := float64(levelData.Current.Height)

	// Keep the level filling the screen. A level smaller than the
	// screen stays centered.
	if levelWidth > screenWidth {
		targetX = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, targetX))
	} else {
		targetX = levelWidth / 2
	}
	if levelHeight > screenHeight {
		targetY = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, targetY))
	} else {
		targetY = levelHeight / 2
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
