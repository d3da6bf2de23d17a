package factory

import (
	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLadder(ecs *ecs.ECS, zone assets.ZoneSpawn) *donburi.Entry {
	return createZone(ecs, archetypes.Ladder.Spawn(ecs), zone, tags.ResolvLadder)
}

func CreateGoal(ecs *ecs.ECS, zone assets.ZoneSpawn) *donburi.Entry {
	return createZone(ecs, archetypes.Goal.Spawn(ecs), zone, tags.ResolvGoal)
}

func createZone(ecs *ecs.ECS, entry *donburi.Entry, zone assets.ZoneSpawn, tag string) *donburi.Entry {
	obj := resolv.NewObject(zone.X, zone.Y, zone.Width, zone.Height, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, zone.Width, zone.Height))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return entry
}
