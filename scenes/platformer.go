package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hollowforge/timewheel/assets"
	"github.com/hollowforge/timewheel/components"
	cfg "github.com/hollowforge/timewheel/config"
	"github.com/hollowforge/timewheel/systems"
	"github.com/hollowforge/timewheel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *systems.LevelWatcher
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	// Live reload: rebuild the world when a level file changed on disk.
	if ps.watcher != nil && ps.watcher.Changed() {
		log.Printf("[reload] level files changed, rebuilding world")
		ps.buildWorld()
	}

	ps.ecs.Update()

	if stateEntry, ok := components.GameState.First(ps.ecs.World); ok {
		state := components.GameState.Get(stateEntry)
		if state.LevelComplete {
			ps.closeWatcher()
			ps.sceneChanger.ChangeScene(NewVictoryScene(ps.sceneChanger))
			return
		}
		if state.PlayerDead {
			ps.closeWatcher()
			ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger))
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	if dir := cfg.C.LevelsDir; dir != "" {
		w, err := systems.NewLevelWatcher(dir)
		if err != nil {
			log.Printf("[reload] cannot watch %s: %v", dir, err)
		} else {
			ps.watcher = w
		}
	}
	ps.buildWorld()
}

// buildWorld creates a fresh ECS and instantiates the level into it.
// Called on scene start and again on live reload.
func (ps *PlatformerScene) buildWorld() {
	level, err := assets.LoadLevel(assets.DefaultLevel)
	if err != nil {
		log.Printf("[level] load failed: %v", err)
		if ps.ecs != nil {
			return // keep the old world running
		}
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateTeleporters)
	e.AddSystem(systems.UpdateEpochProjection)
	e.AddSystem(systems.UpdateTileAnimations)
	e.AddSystem(systems.UpdateDamage)
	e.AddSystem(systems.UpdateVictory)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawTiles)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.SpawnLevel(e, level)

	ps.ecs = e
}

func (ps *PlatformerScene) closeWatcher() {
	if ps.watcher != nil {
		_ = ps.watcher.Close()
		ps.watcher = nil
	}
}
