package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/leveldata"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player centered in the spawn tile.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	offset := (cfg.Level.TileSize - size) / 2
	body := physics.NewPlayer(spawn.X+offset, spawn.Y+offset, size, size, cfg.Player.Tuning)

	components.Player.SetValue(player, components.PlayerData{Body: body})
	return player
}
