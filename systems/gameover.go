package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/fonts"
	"github.com/yohamta/donburi/ecs"
)

var endOptions = []string{"RETRY", "MENU"}

// NewUpdateEndScreen creates the run-ended system: retry restarts the
// level, menu returns to the title.
func NewUpdateEndScreen(sceneChanger SceneChanger, createGameScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(endOptions)
		if input.JustPressed(cfg.ActionMenuUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			switch menu.SelectedIndex {
			case 0:
				sceneChanger.ChangeScene(createGameScene())
			case 1:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
		if input.JustPressed(cfg.ActionMenuBack) {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// NewDrawEndScreen renders the run-ended screen with the given title.
func NewDrawEndScreen(title string) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		menu := GetOrCreateMenu(e)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

		titleFont := fonts.Title.Get()
		titleWidth := len(title) * 20
		text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

		menuFont := fonts.Regular.Get()
		for i, label := range endOptions {
			y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

			textColor := cfg.Menu.TextColorNormal
			if i == menu.SelectedIndex {
				textColor = cfg.Menu.TextColorSelected
			}

			textWidth := len(label) * 10
			x := int((width - float64(textWidth)) / 2)
			text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
		}
	}
}
