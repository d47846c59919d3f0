package systems

import (
	"time"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// now is replaced in tests.
var now = time.Now

// UpdateFrame measures the time since the previous tick and stores it,
// capped, on the level entity. Must run first in the system order.
func UpdateFrame(ecs *ecs.ECS) {
	entry, ok := components.Frame.First(ecs.World)
	if !ok {
		return
	}
	frame := components.Frame.Get(entry)

	t := now()
	if frame.Last.IsZero() {
		frame.Delta = 1000 / float64(cfg.Frame.TPS)
	} else {
		elapsed := float64(t.Sub(frame.Last).Microseconds()) / 1000
		frame.Delta = gamemath.ClampDelta(elapsed, cfg.Frame.MaxDelta)
	}
	frame.Last = t
}

// frameDelta returns the capped length of the current tick in ms.
func frameDelta(ecs *ecs.ECS) float64 {
	entry, ok := components.Frame.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Frame.Get(entry).Delta
}
