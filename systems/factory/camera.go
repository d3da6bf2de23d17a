package factory

import (
	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
