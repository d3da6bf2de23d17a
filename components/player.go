package components

import "github.com/yohamta/donburi"

// PlayerData tracks the player's interaction state. TeleporterSide is
// the signed horizontal offset from the teleporter the player is
// currently inside, sampled when the overlap began; its sign against
// the exit offset decides graze versus crossing.
type PlayerData struct {
	InTeleporter   donburi.Entity
	TeleporterSide float64

	OnLadder bool
	Climbing bool
	FacingX  float64

	// InHazard is the damage sensor the player is currently inside;
	// each hazard hurts once, when the overlap begins. InvulnFrames
	// counts down the grace period after a hit.
	InHazard     donburi.Entity
	InvulnFrames int
}

var Player = donburi.NewComponentType[PlayerData]()
