package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/assets"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/systems"
	"github.com/automoto/boxhop/systems/factory"
	"github.com/automoto/boxhop/systems/persistence"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateFrame)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)

	// Gameplay systems stop while the level complete overlay is shown
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateRestart))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePlayer))

	ecs.AddSystem(systems.UpdateLevelComplete)
	ecs.AddSystem(systems.UpdateParticles)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(persistence.UpdateProgress)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLevelComplete)

	ps.ecs = ecs

	progress := archetypes.Progress.Spawn(ps.ecs)
	levelIndex := 0
	if saved, err := persistence.LoadProgress(); err == nil && saved != nil {
		levelIndex = saved.LevelIndex
		components.Progress.SetValue(progress, components.ProgressData{
			LevelIndex:  saved.LevelIndex,
			TotalDeaths: saved.TotalDeaths,
		})
	}

	if _, err := factory.CreateLevel(ps.ecs, levels, levelIndex); err != nil {
		log.Fatalf("Failed to create level: %v", err)
	}
}
