package archetypes

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
	)
	Checkpoint = newArchetype(
		tags.Obstacle,
		tags.Checkpoint,
		components.Obstacle,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	CheckpointBreak = newArchetype(
		tags.Effect,
		components.CheckpointBreak,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
		components.Frame,
		components.ScreenShake,
	)
	Progress = newArchetype(
		components.Progress,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
