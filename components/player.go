package components

import (
	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi"
)

// PlayerData wraps the physics controller driven by UpdatePlayer.
type PlayerData struct {
	Body *physics.Player
}

var Player = donburi.NewComponentType[PlayerData]()
