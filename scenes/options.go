package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowforge/timewheel/ui"
)

// OptionsScene shows the ebitenui options screen.
type OptionsScene struct {
	sceneChanger SceneChanger
	optionsUI    *ui.OptionsUI
}

func NewOptionsScene(sc SceneChanger) *OptionsScene {
	os := &OptionsScene{sceneChanger: sc}
	os.optionsUI = ui.NewOptionsUI(func() {
		sc.ChangeScene(NewMenuScene(sc))
	})
	return os
}

func (os *OptionsScene) Update() {
	os.optionsUI.Update()
}

func (os *OptionsScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	os.optionsUI.Draw(screen)
}
