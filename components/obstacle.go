package components

import (
	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi"
)

// ObstacleData links a level tile entity to its registry obstacle.
type ObstacleData struct {
	Obstacle *physics.Obstacle
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
