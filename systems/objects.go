package systems

import (
	"github.com/hollowforge/timewheel/components"
	"github.com/yohamta/donburi/ecs"
)

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		components.Object.Get(e).Update()
	}
}
