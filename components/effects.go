package components

import (
	"image/color"

	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake after a death
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // total frames, 0 when idle
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// CheckpointBreakData is the shrink-and-fade left behind by a consumed
// checkpoint.
type CheckpointBreakData struct {
	Box      gamemath.AABB
	Color    color.RGBA
	Tween    *gween.Tween // 1 -> 0, drives both scale and alpha
	Progress float32
	Done     bool
}

var CheckpointBreak = donburi.NewComponentType[CheckpointBreakData]()
