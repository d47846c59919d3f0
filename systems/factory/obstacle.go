package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle creates the entity that renders a registry obstacle.
func CreateObstacle(ecs *ecs.ECS, o *physics.Obstacle) *donburi.Entry {
	var entry *donburi.Entry
	if o.Kind == physics.KindCheckpoint {
		entry = archetypes.Checkpoint.Spawn(ecs)
	} else {
		entry = archetypes.Obstacle.Spawn(ecs)
	}

	components.Obstacle.SetValue(entry, components.ObstacleData{Obstacle: o})
	o.Data = entry // Link for O(1) lookup when the checkpoint is consumed

	return entry
}
