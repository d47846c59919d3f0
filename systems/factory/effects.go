package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpointBreak spawns the shrink-and-fade effect for a consumed
// checkpoint.
func CreateCheckpointBreak(ecs *ecs.ECS, box gamemath.AABB) *donburi.Entry {
	entry := archetypes.CheckpointBreak.Spawn(ecs)
	components.CheckpointBreak.SetValue(entry, components.CheckpointBreakData{
		Box:      box,
		Color:    cfg.TileColors[physics.KindCheckpoint],
		Tween:    gween.New(1, 0, float32(cfg.Checkpoint.BreakDuration), ease.InQuad),
		Progress: 1,
	})
	return entry
}

// TriggerScreenShake starts or refreshes the screen shake on the level entity.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if intensity < shake.Intensity && shake.Duration > 0 {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}
