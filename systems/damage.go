package systems

import (
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamage hurts the player once for each hazard they enter: the
// hit lands when the overlap begins, then the hazard stays harmless
// until they leave and come back. A short invulnerability window after
// a hit also covers entering a second hazard right away. Flags the
// game over when health runs out.
func UpdateDamage(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	current := overlappingHazard(obj.Object)
	switch {
	case current == nil:
		var none donburi.Entity
		player.InHazard = none
	case !ecs.World.Valid(player.InHazard) || current.Entity() != player.InHazard:
		player.InHazard = current.Entity()
		if player.InvulnFrames == 0 {
			health.Damage(components.Damage.Get(current).Amount)
			player.InvulnFrames = cfg.Player.InvulnTicks
		}
	}

	if health.Current <= 0 {
		if stateEntry, ok := components.GameState.First(ecs.World); ok {
			components.GameState.Get(stateEntry).PlayerDead = true
		}
	}
}

// overlappingHazard returns the damage sensor whose rectangle the
// player currently intersects, or nil.
func overlappingHazard(obj *resolv.Object) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tags.ResolvHazard) {
		if !aabbOverlap(obj, o) {
			continue
		}
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.HasComponent(components.Damage) {
			continue
		}
		return entry
	}
	return nil
}
