package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/automoto/boxhop/shared/leveldata"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoLevel = errors.New("no level entity")

// CreateLevel spawns the level entity for a level set and builds the level
// at levelIndex.
func CreateLevel(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) (*donburi.Entry, error) {
	if len(levels) == 0 {
		return nil, errors.New("no levels to play")
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Levels:  levels,
		Emitter: physics.NewEmitter(cfg.Particles.Seed, cfg.Particles.Tuning),
	})

	if err := LoadLevel(ecs, levelIndex); err != nil {
		return nil, err
	}
	return level, nil
}

// LoadLevel replaces the current level's entities with the level at
// levelIndex. Out of range indexes start over from the first level. The
// player's death count carries over.
func LoadLevel(ecs *ecs.ECS, levelIndex int) error {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return errNoLevel
	}
	data := components.Level.Get(entry)

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(data.Levels) {
		levelIndex = 0
	}
	level := data.Levels[levelIndex]

	reg, err := CreateRegistry(level)
	if err != nil {
		return fmt.Errorf("build level %d: %w", levelIndex, err)
	}

	deaths := 0
	if p, ok := tags.Player.First(ecs.World); ok {
		deaths = components.Player.Get(p).Body.Deaths()
	}
	clearLevel(ecs)

	data.LevelIndex = levelIndex
	data.CurrentLevel = level
	data.World = physics.NewWorld(reg, gamemath.NewAABB(0, 0, level.Width, level.Height), &Sink{ECS: ecs})

	for _, o := range reg.Obstacles() {
		CreateObstacle(ecs, o)
	}
	player := CreatePlayer(ecs, level.Spawn)
	components.Player.Get(player).Body.SetDeaths(deaths)

	components.LevelComplete.SetValue(entry, components.LevelCompleteData{})
	return nil
}

// clearLevel removes every per-level entity. Entries are collected first so
// the queries are not mutated while they are walked.
func clearLevel(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	}
	tags.Player.Each(ecs.World, collect)
	tags.Obstacle.Each(ecs.World, collect)
	tags.Particle.Each(ecs.World, collect)
	tags.Effect.Each(ecs.World, collect)

	for _, e := range toRemove {
		if e.Valid() {
			e.Remove()
		}
	}
}
