package systems

import (
	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steps the player controller through one tick. Deaths,
// checkpoints and level completion come back through the level's sink.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.World == nil {
		return
	}

	left, right, jump := physicsInput(getOrCreateInput(ecs))
	body := components.Player.Get(playerEntry).Body
	body.Step(level.World, physics.Input{
		MoveLeft:  left,
		MoveRight: right,
		Jump:      jump,
	}, frameDelta(ecs))
}
