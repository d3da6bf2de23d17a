package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var (
	hudShownRatio  float32 = 1
	hudTargetRatio float32 = 1
	hudTween       *gween.Tween
)

// DrawHUD renders the player's health bar. The displayed fill eases
// toward the real value instead of snapping.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	ratio := float32(0)
	if hp.Max > 0 {
		ratio = float32(hp.Current / hp.Max)
	}
	if ratio != hudTargetRatio {
		hudTargetRatio = ratio
		hudTween = gween.New(hudShownRatio, ratio, cfg.HUD.EaseSeconds, ease.OutQuad)
	}
	if hudTween != nil {
		v, done := hudTween.Update(1.0 / float32(ebiten.TPS()))
		hudShownRatio = v
		if done {
			hudTween = nil
		}
	}

	h := cfg.HUD
	vector.DrawFilledRect(screen,
		h.BarX-h.BarBorder, h.BarY-h.BarBorder,
		h.BarWidth+2*h.BarBorder, h.BarHeight+2*h.BarBorder,
		h.BorderColor, false)
	vector.DrawFilledRect(screen,
		h.BarX, h.BarY, h.BarWidth, h.BarHeight,
		h.BackColor, false)
	vector.DrawFilledRect(screen,
		h.BarX, h.BarY, h.BarWidth*hudShownRatio, h.BarHeight,
		h.FillColor, false)
}
