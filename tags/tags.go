package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Tile       = donburi.NewTag().SetName("Tile")
	Teleporter = donburi.NewTag().SetName("Teleporter")
	Ladder     = donburi.NewTag().SetName("Ladder")
	Goal       = donburi.NewTag().SetName("Goal")
	Hazard     = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision and sensor dispatch
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "player"
	ResolvTeleporter = "teleport"
	ResolvLadder     = "ladder"
	ResolvGoal       = "goal"
	ResolvHazard     = "hazard"
)
