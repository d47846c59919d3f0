package systems

import (
	"log"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRestart reloads the current level when restart is pressed.
func UpdateRestart(ecs *ecs.ECS) {
	if !GetAction(getOrCreateInput(ecs), cfg.ActionRestart).JustPressed {
		return
	}
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	index := components.Level.Get(entry).LevelIndex
	if err := factory.LoadLevel(ecs, index); err != nil {
		log.Printf("Warning: Could not reload level %d: %v", index, err)
	}
}

// DrawLevel fills the background and draws every remaining obstacle.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Level.Background)

	ox, oy := shakeOffset(ecs)
	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Obstacle.Get(e).Obstacle
		if o.Consumed() {
			return
		}
		vector.DrawFilledRect(
			screen,
			float32(o.Box.X+ox), float32(o.Box.Y+oy),
			float32(o.Box.Width), float32(o.Box.Height),
			cfg.TileColors[o.Kind],
			false,
		)
	})
}
