package factory

import (
	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard spawns a damage sensor rectangle. Hazards never block
// movement; the damage system reacts to overlap.
func CreateHazard(ecs *ecs.ECS, x, y, w, h, damage float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hazard

	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Damage.SetValue(hazard, components.DamageData{Amount: damage})
	addToSpace(ecs, obj)

	return hazard
}
