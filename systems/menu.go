package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var menuOptions = []string{"START", "OPTIONS", "EXIT"}

const (
	menuStart = iota
	menuOptionsEntry
	menuExit
)

// NewUpdateMenu creates the main menu system with scene transition
// capability.
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene, createOptionsScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menuOptions)
		if input.JustPressed(cfg.ActionMenuUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			switch menu.SelectedIndex {
			case menuStart:
				sceneChanger.ChangeScene(createGameScene())
			case menuOptionsEntry:
				sceneChanger.ChangeScene(createOptionsScene())
			case menuExit:
				os.Exit(0)
			}
		}
		if input.JustPressed(cfg.ActionMenuBack) {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "TIMEWHEEL"
	titleWidth := len(title) * 20 // approximate for the 32pt face
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Regular.Get()
	for i, label := range menuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		textWidth := len(label) * 10
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "W/S: Navigate   Enter: Select   Esc: Quit"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 6
	text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2), int(height)-12, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton menu state, creating it if
// needed.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Menu))
	return components.Menu.Get(entry)
}

// getOrCreateInput returns the menu's input buffer entity. Gameplay
// scenes read input off the player entity instead.
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := firstDetachedInput(e); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Input))
	return components.Input.Get(entry)
}

func firstDetachedInput(e *ecs.ECS) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && !entry.HasComponent(components.Player) {
			found = entry
		}
	})
	return found, found != nil
}
