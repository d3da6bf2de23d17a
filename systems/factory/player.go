package factory

import (
	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its collider centered on the
// spawn point's x and its feet on the spawn point's y.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		FacingX: 1,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.TileAnimation.SetValue(player, components.TileAnimationData{
		Frames: components.UniformFrames(0, cfg.Player.WalkFrameCount, cfg.Player.WalkFrameMs),
	})
	addToSpace(ecs, obj)

	return player
}
