package systems

import (
	"log"

	"github.com/hollowforge/timewheel/components"
	"github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTeleporters drives the portal crossing state machine. Entering
// a linked portal records which side the player came in from; leaving
// it compares the exit side against that record. Leaving on the entry
// side is a graze and does nothing. Leaving on the far side is a
// crossing: the player is relocated to the partner portal, preserving
// their offset, and the world epoch shifts one step in the portal's
// direction. At most one epoch transition happens per update.
func UpdateTeleporters(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	current := overlappingTeleporter(ecs, obj.Object)

	if !ecs.World.Valid(player.InTeleporter) {
		// Not inside anything last tick; maybe entering now.
		if current != nil {
			beginOverlap(player, obj.Object, current)
		}
		return
	}

	inside := ecs.World.Entry(player.InTeleporter)
	if current != nil && current.Entity() == player.InTeleporter {
		return
	}

	// The overlap with the recorded portal ended this tick.
	endOverlap(ecs, playerEntry, inside)

	// The player may already be inside another portal, including the
	// partner they were just moved to.
	if current = overlappingTeleporter(ecs, obj.Object); current != nil {
		beginOverlap(player, obj.Object, current)
	} else {
		var none donburi.Entity
		player.InTeleporter = none
	}
}

func beginOverlap(player *components.PlayerData, obj *resolv.Object, tp *donburi.Entry) {
	tpObj := components.Object.Get(tp)
	player.InTeleporter = tp.Entity()
	player.TeleporterSide = centerX(obj) - centerX(tpObj.Object)
}

func endOverlap(ecs *ecs.ECS, playerEntry *donburi.Entry, tp *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	td := components.Teleporter.Get(tp)
	tpObj := components.Object.Get(tp)

	exitSide := centerX(obj.Object) - centerX(tpObj.Object)
	if exitSide*player.TeleporterSide >= 0 {
		// Same side in and out: a graze.
		player.TeleporterSide = 0
		return
	}

	if !td.Linked || !ecs.World.Valid(td.Target) {
		return
	}
	partner := ecs.World.Entry(td.Target)
	partnerObj := components.Object.Get(partner)

	// Carry the player's offset from the source portal over to the
	// partner, so they come out where they went in.
	obj.X = partnerObj.X + (obj.X - tpObj.X)
	obj.Y = partnerObj.Y + (obj.Y - tpObj.Y)
	obj.Update()

	epochEntry, ok := components.Epoch.First(ecs.World)
	if !ok {
		return
	}
	epoch := components.Epoch.Get(epochEntry)
	if partnerObj.X > tpObj.X {
		epoch.Set(epoch.Cur - 1)
	} else {
		epoch.Set(epoch.Cur + 1)
	}

	if config.Debug.Verbose {
		log.Printf("[teleport] crossed portal #%d, epoch now %d", td.ID, epoch.Cur)
	}
}

// overlappingTeleporter returns the linked portal whose rectangle the
// player currently intersects, or nil.
func overlappingTeleporter(ecs *ecs.ECS, obj *resolv.Object) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvTeleporter)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tags.ResolvTeleporter) {
		if !aabbOverlap(obj, o) {
			continue
		}
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.HasComponent(components.Teleporter) {
			continue
		}
		if !components.Teleporter.Get(entry).Linked {
			continue
		}
		return entry
	}
	return nil
}

func centerX(o *resolv.Object) float64 {
	return o.X + o.W/2
}

func aabbOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
