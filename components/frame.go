package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FrameData holds the capped elapsed time of the current tick.
type FrameData struct {
	Last  time.Time
	Delta float64 // ms, already capped
}

var Frame = donburi.NewComponentType[FrameData]()
