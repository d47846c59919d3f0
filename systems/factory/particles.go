package factory

import (
	"image/color"

	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi/ecs"
)

func burstColor(src physics.BurstSource) color.RGBA {
	switch src {
	case physics.BurstBounce:
		return cfg.TileColors[physics.KindBounce]
	case physics.BurstCheckpoint:
		return cfg.TileColors[physics.KindCheckpoint]
	}
	return cfg.Player.Color
}

// CreateParticles spawns one entity per particle of the burst.
func CreateParticles(ecs *ecs.ECS, emitter *physics.Emitter, b physics.Burst) int {
	c := burstColor(b.Source)
	ps := emitter.Emit(b)
	for _, p := range ps {
		entry := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(entry, components.ParticleData{Particle: p, Color: c})
	}
	return len(ps)
}
