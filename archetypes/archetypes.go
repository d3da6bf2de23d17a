package archetypes

import (
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.TileAnimation,
		components.Input,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
	)
	Teleporter = newArchetype(
		tags.Teleporter,
		components.Teleporter,
		components.Object,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Damage,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Epoch = newArchetype(
		components.Epoch,
	)
	Camera = newArchetype(
		components.Camera,
	)
	GameState = newArchetype(
		components.GameState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
}
