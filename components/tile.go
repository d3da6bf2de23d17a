package components

import "github.com/yohamta/donburi"

// TileData is one placed tile of the level grid. TextureIndex is the
// tileset-local index the renderer draws; epoch projection and tile
// animation both retarget it at runtime.
type TileData struct {
	GridX, GridY int
	LayerIndex   int
	TilesetIndex int

	TextureIndex uint32
	FlipH, FlipV bool
	Visible      bool
}

var Tile = donburi.NewComponentType[TileData]()
