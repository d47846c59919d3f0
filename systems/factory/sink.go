package factory

import (
	"log"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const checkpointSegments = 4

// Sink turns physics events into entities and level state.
type Sink struct {
	ECS *ecs.ECS
}

func (s *Sink) level() *components.LevelData {
	entry, ok := components.Level.First(s.ECS.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func (s *Sink) Burst(b physics.Burst) {
	if level := s.level(); level != nil {
		CreateParticles(s.ECS, level.Emitter, b)
	}
	if b.Source != physics.BurstDeath {
		return
	}

	TriggerScreenShake(s.ECS, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)
	if entry, ok := components.Progress.First(s.ECS.World); ok {
		progress := components.Progress.Get(entry)
		progress.TotalDeaths++
		progress.Dirty = true
	}
	if cfg.Debug.LogEvents {
		log.Printf("player died at %.0f,%.0f (direction %s)", b.Box.X, b.Box.Y, b.Direction)
	}
}

func (s *Sink) CheckpointReached(o *physics.Obstacle) {
	if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
		entry.Remove()
	}
	CreateCheckpointBreak(s.ECS, o.Box)
	s.Burst(physics.Burst{
		Source:    physics.BurstCheckpoint,
		Box:       o.Box,
		Direction: gamemath.SideTop,
		Segments:  checkpointSegments,
		Scale:     o.Box.Width / cfg.Level.TileSize,
		Fade:      true,
	})
	if cfg.Debug.LogEvents {
		log.Printf("checkpoint reached at %.0f,%.0f", o.Box.X, o.Box.Y)
	}
}

func (s *Sink) LevelComplete() {
	entry, ok := components.LevelComplete.First(s.ECS.World)
	if !ok {
		return
	}
	complete := components.LevelComplete.Get(entry)
	complete.IsComplete = true

	if level := s.level(); level != nil {
		complete.AllComplete = level.LevelIndex == len(level.Levels)-1
		if cfg.Debug.LogEvents {
			log.Printf("level %s complete", level.CurrentLevel.Name)
		}
	}
}
