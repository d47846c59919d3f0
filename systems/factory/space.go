package factory

import (
	"fmt"

	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/automoto/boxhop/shared/leveldata"
	"github.com/automoto/boxhop/shared/physics"
)

var tileKinds = map[leveldata.TileKind]physics.Kind{
	leveldata.TileNormal:     physics.KindNormal,
	leveldata.TileHazard:     physics.KindHazard,
	leveldata.TileGoal:       physics.KindGoal,
	leveldata.TileBounce:     physics.KindBounce,
	leveldata.TileCheckpoint: physics.KindCheckpoint,
}

// CreateRegistry builds the obstacle registry for a level, in tile order.
func CreateRegistry(level *leveldata.Level) (*physics.Registry, error) {
	reg := physics.NewRegistry(int(level.Width), int(level.Height), cfg.Level.CellSize)
	for _, t := range level.Tiles {
		kind, ok := tileKinds[t.Kind]
		if !ok {
			return nil, fmt.Errorf("level %s: tile at %v,%v: %w", level.Name, t.X, t.Y, leveldata.ErrUnknownKind)
		}
		box := gamemath.NewAABB(t.X, t.Y, t.W, t.H)
		if kind == physics.KindBounce {
			speed := t.BounceSpeed
			if speed == 0 {
				speed = cfg.Bounce.Speed
			}
			reg.AddBounce(box, speed)
			continue
		}
		reg.Add(box, kind)
	}
	return reg, nil
}
