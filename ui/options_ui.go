package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hollowforge/timewheel/systems"
	"golang.org/x/image/font/gofont/goregular"
)

// OptionsUI is the ebitenui options screen: display settings plus a
// way back to the menu.
type OptionsUI struct {
	UI *ebitenui.UI

	OnGoBack func()

	fullscreenButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

func NewOptionsUI(onGoBack func()) *OptionsUI {
	oui := &OptionsUI{
		OnGoBack: onGoBack,
	}
	oui.loadFonts()
	oui.buildUI()
	return oui
}

func (oui *OptionsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	oui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	oui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (oui *OptionsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("OPTIONS", &oui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	oui.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 32)),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text(fullscreenLabel(), &oui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 220, 255, 255},
			Pressed: color.RGBA{150, 170, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
			if textWidget := oui.fullscreenButton.Text(); textWidget != nil {
				textWidget.Label = fullscreenLabel()
			}
			_ = systems.SaveSettings(&systems.SavedSettings{
				Fullscreen: ebiten.IsFullscreen(),
			})
		}),
	)
	contentContainer.AddChild(oui.fullscreenButton)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 32)),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text("Back", &oui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if oui.OnGoBack != nil {
				oui.OnGoBack()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	oui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (oui *OptionsUI) Update() {
	oui.UI.Update()
}

func (oui *OptionsUI) Draw(screen *ebiten.Image) {
	oui.UI.Draw(screen)
}

func (oui *OptionsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func fullscreenLabel() string {
	return fmt.Sprintf("Fullscreen: %v", onOff(ebiten.IsFullscreen()))
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
