package factory

import (
	"log"

	"github.com/hollowforge/timewheel/archetypes"
	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTeleporter(ecs *ecs.ECS, spawn assets.TeleporterSpawn) *donburi.Entry {
	tp := archetypes.Teleporter.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvTeleporter)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.Width, spawn.Height))
	obj.Data = tp

	components.Object.SetValue(tp, components.ObjectData{Object: obj})
	components.Teleporter.SetValue(tp, components.TeleporterData{
		ID:    spawn.ID,
		DstID: spawn.DstID,
	})
	addToSpace(ecs, obj)

	return tp
}

// ResolveTeleporters pairs the spawned portals after all of them
// exist. A portal links only when its destination exists AND declares
// it back; anything else (dangling reference, one-way declaration,
// self-reference) leaves the portal unlinked and inert.
func ResolveTeleporters(ecs *ecs.ECS) {
	byID := map[uint32]*donburi.Entry{}
	for e := range components.Teleporter.Iter(ecs.World) {
		byID[components.Teleporter.Get(e).ID] = e
	}

	for _, e := range byID {
		td := components.Teleporter.Get(e)

		if td.DstID == td.ID {
			log.Printf("[teleport] portal #%d targets itself, leaving it unlinked", td.ID)
			continue
		}

		partner, ok := byID[td.DstID]
		if !ok {
			log.Printf("[teleport] portal #%d targets missing portal #%d, leaving it unlinked", td.ID, td.DstID)
			continue
		}
		if components.Teleporter.Get(partner).DstID != td.ID {
			log.Printf("[teleport] portal #%d targets #%d, which does not point back, leaving it unlinked", td.ID, td.DstID)
			continue
		}

		td.Target = partner.Entity()
		td.Linked = true
	}
}
