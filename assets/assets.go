package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hollowforge/timewheel/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// DefaultLevel is the map loaded when the game starts.
const DefaultLevel = "map1.tmx"

var (
	solidLayerName      = config.Level.SolidLayerName
	hazardColliderClass = config.Level.HazardColliderClass
)

func debugf(format string, args ...any) {
	if config.Debug.Verbose {
		log.Printf(format, args...)
	}
}

// LoadLevel parses and builds the named map. Maps come from the
// embedded filesystem unless config.C.LevelsDir points at a directory
// on disk (the live-reload development mode).
func LoadLevel(name string) (*Level, error) {
	var (
		m   *tiled.Map
		err error
	)
	if dir := config.C.LevelsDir; dir != "" {
		m, err = tiled.LoadFile(filepath.Join(dir, name))
	} else {
		m, err = tiled.LoadFile(filepath.Join("levels", name), tiled.WithFileSystem(levelFS))
	}
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", name, err)
	}
	return BuildLevel(name, m)
}

type imageLoader struct {
	cache     map[string]*ebiten.Image
	tileCache map[tileKey]*ebiten.Image
	failed    map[string]bool
}

type tileKey struct {
	source string
	id     uint32
}

var images = &imageLoader{
	cache:     make(map[string]*ebiten.Image),
	tileCache: make(map[tileKey]*ebiten.Image),
	failed:    make(map[string]bool),
}

// MustLoadImage loads an image from the embedded images directory,
// panicking on failure. Used only for assets compiled into the binary.
func MustLoadImage(path string) *ebiten.Image {
	if img, ok := images.cache[path]; ok {
		return img
	}

	raw, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("read embedded image %s: %v", path, err))
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("decode embedded image %s: %v", path, err))
	}

	images.cache[path] = img
	return img
}

// PlayerSheet returns the player sprite sheet.
func PlayerSheet() *ebiten.Image {
	return MustLoadImage("images/player.png")
}

// TilesetImage returns the image backing a tileset. A tileset whose
// image cannot be loaded is reported once and then treated as absent;
// its tiles are simply not drawn.
func TilesetImage(ref TilesetRef) (*ebiten.Image, bool) {
	if ref.ImageSource == "" {
		return nil, false
	}
	if img, ok := images.cache[ref.ImageSource]; ok {
		return img, true
	}
	if images.failed[ref.ImageSource] {
		return nil, false
	}

	var (
		raw []byte
		err error
	)
	if dir := config.C.LevelsDir; dir != "" {
		raw, err = os.ReadFile(filepath.Join(dir, ref.ImageSource))
	} else {
		raw, err = levelFS.ReadFile(filepath.Join("levels", ref.ImageSource))
	}
	if err == nil {
		var img *ebiten.Image
		img, _, err = ebitenutil.NewImageFromReader(bytes.NewReader(raw))
		if err == nil {
			images.cache[ref.ImageSource] = img
			return img, true
		}
	}

	log.Printf("[assets] tileset %q image %s unavailable, its tiles will be skipped: %v", ref.Name, ref.ImageSource, err)
	images.failed[ref.ImageSource] = true
	return nil, false
}

// TileImage returns the cached sub-image for one tile of a tileset.
func TileImage(ref TilesetRef, id uint32) (*ebiten.Image, bool) {
	key := tileKey{source: ref.ImageSource, id: id}
	if img, ok := images.tileCache[key]; ok {
		return img, true
	}

	sheet, ok := TilesetImage(ref)
	if !ok || ref.Columns <= 0 {
		return nil, false
	}

	col := int(id) % ref.Columns
	row := int(id) / ref.Columns
	x := ref.Margin + col*(ref.TileWidth+ref.Spacing)
	y := ref.Margin + row*(ref.TileHeight+ref.Spacing)
	rect := image.Rect(x, y, x+ref.TileWidth, y+ref.TileHeight)
	if !rect.In(sheet.Bounds()) {
		return nil, false
	}

	img := sheet.SubImage(rect).(*ebiten.Image)
	images.tileCache[key] = img
	return img, true
}
