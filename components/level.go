package components

import (
	"github.com/automoto/boxhop/shared/leveldata"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level
	World        *physics.World
	Emitter      *physics.Emitter
}

var Level = donburi.NewComponentType[LevelData]()
