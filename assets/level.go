package assets

import (
	"fmt"
	"log"

	"github.com/lafriks/go-tiled"
)

// Object classes recognized in the map document. Anything else is
// ignored.
const (
	classPlayerStart = "player_start"
	classTeleport    = "teleport"
	classLadder      = "ladder"
	classLevelEnd    = "level_end"
)

// EpochSprite maps a global epoch value onto one tile's visibility and
// texture index. For a current epoch e the tile's apparent value is
// e+Delta; the tile is visible iff First <= e+Delta <= Last, and while
// visible its texture index is Base + (e+Delta - First).
type EpochSprite struct {
	Base  uint32
	Delta int
	First int
	Last  int
}

// Frame is one step of a tile animation.
type Frame struct {
	TileID     uint32
	DurationMs int
}

// HazardShape is a damage sensor rectangle local to its tile's cell.
type HazardShape struct {
	OffsetX, OffsetY float64
	Width, Height    float64
	Damage           float64
}

// TilePlacement is one instantiated grid cell of a tile layer.
type TilePlacement struct {
	GridX, GridY int
	LayerIndex   int
	LayerName    string

	TilesetIndex int
	TileID       uint32 // texture index within the tileset
	FlipH, FlipV bool

	Solid   bool
	Epoch   *EpochSprite
	Frames  []Frame
	Hazards []HazardShape
}

// SpawnPoint marks where the player enters the level.
type SpawnPoint struct {
	X, Y float64
}

// TeleporterSpawn is a portal rectangle plus its declared destination
// object id. Pairing happens after all objects exist.
type TeleporterSpawn struct {
	ID            uint32
	X, Y          float64
	Width, Height float64
	DstID         uint32
}

// ZoneSpawn is a plain sensor rectangle (ladder, goal).
type ZoneSpawn struct {
	X, Y          float64
	Width, Height float64
}

// TilesetRef carries what the renderer needs to slice a tileset image.
type TilesetRef struct {
	Name        string
	ImageSource string
	FirstGID    uint32
	TileWidth   int
	TileHeight  int
	Columns     int
	Spacing     int
	Margin      int
}

// Level is the built world: every tile placement with its computed
// descriptors, the object spawns, and the folded global epoch range.
type Level struct {
	Name       string
	Width      int // pixels
	Height     int // pixels
	TileWidth  int
	TileHeight int

	Tilesets []TilesetRef
	Tiles    []TilePlacement

	PlayerStart *SpawnPoint
	Teleporters []TeleporterSpawn
	Ladders     []ZoneSpawn
	Goals       []ZoneSpawn

	// Global epoch bound, widened by every epoch-bearing tile.
	EpochMin int
	EpochMax int
}

// BuildLevel walks the map document once and produces the Level. Tile
// layers are processed in document order, then object layers. Malformed
// tiles and objects are skipped with a warning; only a structurally
// unusable document returns an error.
func BuildLevel(name string, m *tiled.Map) (*Level, error) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("map %s has no grid (%dx%d)", name, m.Width, m.Height)
	}

	level := &Level{
		Name:       name,
		Width:      m.Width * m.TileWidth,
		Height:     m.Height * m.TileHeight,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
	}

	for _, ts := range m.Tilesets {
		ref := TilesetRef{
			Name:       ts.Name,
			FirstGID:   ts.FirstGID,
			TileWidth:  ts.TileWidth,
			TileHeight: ts.TileHeight,
			Columns:    ts.Columns,
			Spacing:    ts.Spacing,
			Margin:     ts.Margin,
		}
		if ts.Image != nil {
			ref.ImageSource = ts.Image.Source
		}
		level.Tilesets = append(level.Tilesets, ref)
	}

	for layerIndex, layer := range m.Layers {
		level.buildTileLayer(m, layerIndex, layer)
	}

	level.buildObjects(m)

	return level, nil
}

func (l *Level) buildTileLayer(m *tiled.Map, layerIndex int, layer *tiled.Layer) {
	solid := layer.Name == solidLayerName
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			lt := layer.Tiles[y*m.Width+x]
			if lt.IsNil() {
				continue
			}

			tilesetIndex := tilesetIndexOf(m, lt.Tileset)
			if tilesetIndex < 0 {
				log.Printf("[level] %s: tile at %d,%d references an unknown tileset, skipping", layer.Name, x, y)
				continue
			}

			placement := TilePlacement{
				GridX:        x,
				GridY:        y,
				LayerIndex:   layerIndex,
				LayerName:    layer.Name,
				TilesetIndex: tilesetIndex,
				TileID:       lt.ID,
				FlipH:        lt.HorizontalFlip,
				FlipV:        lt.VerticalFlip,
				Solid:        solid,
			}

			// Per-tile metadata lives on the tileset's tile entry; a
			// plain tile has none.
			if tsTile, err := lt.Tileset.GetTilesetTile(lt.ID); err == nil {
				placement.Epoch = l.resolveEpoch(tsTile, lt.ID)
				placement.Frames = tileFrames(tsTile)
				placement.Hazards = tileHazards(tsTile)
			}

			l.Tiles = append(l.Tiles, placement)
		}
	}
}

// resolveEpoch builds the tile's epoch descriptor, folding its local
// bound (taken relative to epoch zero) into the global range. A tile
// without an epoch property is always visible and has no descriptor.
func (l *Level) resolveEpoch(tsTile *tiled.TilesetTile, tileID uint32) *EpochSprite {
	epoch, ok := intProp(tsTile.Properties, "epoch")
	if !ok {
		return nil
	}

	min0, ok := intProp(tsTile.Properties, "epoch_min")
	if !ok {
		min0 = epoch
	}
	max0, ok := intProp(tsTile.Properties, "epoch_max")
	if !ok {
		max0 = epoch
	}
	first, last := min0, max0
	if first > last {
		first, last = last, first
	}

	if v := first - epoch; v < l.EpochMin {
		l.EpochMin = v
	}
	if v := last - epoch; v > l.EpochMax {
		l.EpochMax = v
	}

	if epoch < first {
		epoch = first
	} else if epoch > last {
		epoch = last
	}

	return &EpochSprite{
		Base:  tileID - uint32(epoch-first),
		Delta: epoch,
		First: first,
		Last:  last,
	}
}

func tileFrames(tsTile *tiled.TilesetTile) []Frame {
	if len(tsTile.Animation) == 0 {
		return nil
	}
	frames := make([]Frame, 0, len(tsTile.Animation))
	for _, f := range tsTile.Animation {
		frames = append(frames, Frame{TileID: f.TileID, DurationMs: int(f.Duration)})
	}
	return frames
}

// tileHazards collects the tile's damage sensor rectangles: a damage
// property plus rectangular collision shapes of the hazard collider
// class. A damage property without a usable shape yields nothing.
func tileHazards(tsTile *tiled.TilesetTile) []HazardShape {
	damage, ok := floatProp(tsTile.Properties, "damage")
	if !ok {
		return nil
	}

	var shapes []HazardShape
	for _, og := range tsTile.ObjectGroups {
		for _, o := range og.Objects {
			if objectClass(o) != hazardColliderClass {
				continue
			}
			if !isRect(o) {
				log.Printf("[level] hazard collider on tile %d is not a rectangle, skipping", tsTile.ID)
				continue
			}
			shapes = append(shapes, HazardShape{
				OffsetX: o.X,
				OffsetY: o.Y,
				Width:   o.Width,
				Height:  o.Height,
				Damage:  damage,
			})
		}
	}
	return shapes
}

// buildObjects processes every object layer once, after all tile
// layers. Unknown classes are ignored, not errors.
func (l *Level) buildObjects(m *tiled.Map) {
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			switch objectClass(o) {
			case classPlayerStart:
				if l.PlayerStart != nil {
					log.Printf("[level] duplicate player_start #%d, keeping the last one", o.ID)
				}
				l.PlayerStart = &SpawnPoint{X: o.X, Y: o.Y}

			case classTeleport:
				if !isRect(o) {
					log.Printf("[level] teleporter #%d is not a rectangle, skipping", o.ID)
					continue
				}
				dst, ok := objectProp(o.Properties, "dst")
				if !ok {
					log.Printf("[level] teleporter #%d is missing a 'dst' property, skipping", o.ID)
					continue
				}
				l.Teleporters = append(l.Teleporters, TeleporterSpawn{
					ID:     o.ID,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					DstID:  dst,
				})

			case classLadder:
				if !isRect(o) {
					log.Printf("[level] ladder #%d is not a rectangle, skipping", o.ID)
					continue
				}
				l.Ladders = append(l.Ladders, ZoneSpawn{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})

			case classLevelEnd:
				if !isRect(o) {
					log.Printf("[level] level_end #%d is not a rectangle, skipping", o.ID)
					continue
				}
				l.Goals = append(l.Goals, ZoneSpawn{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})

			default:
				debugf("[level] ignoring object #%d of class %q", o.ID, objectClass(o))
			}
		}
	}
}

func tilesetIndexOf(m *tiled.Map, ts *tiled.Tileset) int {
	for i, candidate := range m.Tilesets {
		if candidate == ts {
			return i
		}
	}
	return -1
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX files may still use the type= attribute
}

func isRect(o *tiled.Object) bool {
	return o.Width > 0 && o.Height > 0 && len(o.PolyLines) == 0
}
