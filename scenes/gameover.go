package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EndScene is the run-ended screen, shown for both death and level
// completion.
type EndScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	title        string
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger) *EndScene {
	return &EndScene{sceneChanger: sc, title: "YOU DIED"}
}

func NewVictoryScene(sc SceneChanger) *EndScene {
	return &EndScene{sceneChanger: sc, title: "LEVEL COMPLETE"}
}

func (es *EndScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *EndScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EndScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())

	createGameScene := func() interface{} {
		return NewPlatformerScene(es.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(es.sceneChanger)
	}

	es.ecs.AddSystem(systems.UpdateInput)
	es.ecs.AddSystem(systems.NewUpdateEndScreen(es.sceneChanger, createGameScene, createMenuScene))

	es.ecs.AddRenderer(cfg.Default, systems.NewDrawEndScreen(es.title))
}
