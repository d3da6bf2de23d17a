package components

import "github.com/yohamta/donburi"

// TeleporterData links a portal to its partner. A teleporter stays
// unlinked when its declared destination never resolves; an unlinked
// portal is inert.
type TeleporterData struct {
	ID     uint32
	DstID  uint32
	Target donburi.Entity
	Linked bool
}

var Teleporter = donburi.NewComponentType[TeleporterData]()
