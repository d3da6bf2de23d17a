package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	playerSheet *ebiten.Image
)

// cameraOffset returns the translation that puts the camera's position
// at the screen center.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(w)/2 - camera.Position.X, float64(h)/2 - camera.Position.Y, true
}

// DrawTiles renders every visible tile, camera-relative, with viewport
// culling. Tiles were spawned in layer order, so iteration order is
// draw order.
func DrawTiles(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	if level == nil {
		return
	}

	tw := float64(level.TileWidth)
	th := float64(level.TileHeight)
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	components.Tile.Each(ecs.World, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		if !tile.Visible {
			return
		}
		if tile.TilesetIndex < 0 || tile.TilesetIndex >= len(level.Tilesets) {
			return
		}

		x := float64(tile.GridX)*tw + offX
		y := float64(tile.GridY)*th + offY
		if x+tw < 0 || x > sw || y+th < 0 || y > sh {
			return
		}

		img, ok := assets.TileImage(level.Tilesets[tile.TilesetIndex], tile.TextureIndex)
		if !ok {
			return
		}

		drawOp.GeoM.Reset()
		if tile.FlipH || tile.FlipV {
			sx, sy := 1.0, 1.0
			if tile.FlipH {
				sx = -1
			}
			if tile.FlipV {
				sy = -1
			}
			drawOp.GeoM.Translate(-tw/2, -th/2)
			drawOp.GeoM.Scale(sx, sy)
			drawOp.GeoM.Translate(tw/2, th/2)
		}
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawPlayer renders the player's current walk frame, bottom-center
// anchored on its collision box.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	anim := components.TileAnimation.Get(playerEntry)

	if playerSheet == nil {
		playerSheet = assets.PlayerSheet()
	}

	fw := cfg.Player.FrameWidth
	fh := cfg.Player.FrameHeight
	var walkFrame int
	if len(anim.Frames) > 0 {
		walkFrame = int(anim.Frames[anim.Index].TileID)
	}
	sx := walkFrame * fw
	frame := playerSheet.SubImage(image.Rect(sx, 0, sx+fw, fh)).(*ebiten.Image)

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-float64(fw)/2, -float64(fh))
	if player.FacingX < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(obj.X+obj.W/2+offX, obj.Y+obj.H+offY)
	screen.DrawImage(frame, drawOp)
}
