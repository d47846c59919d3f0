package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer draws the player box. Nothing is drawn while it waits to
// respawn.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Player.Get(entry).Body
	if body.IsDead() {
		return
	}

	ox, oy := shakeOffset(ecs)
	vector.DrawFilledRect(
		screen,
		float32(body.Position.X+ox), float32(body.Position.Y+oy),
		float32(body.Width), float32(body.Height),
		cfg.Player.Color,
		false,
	)
}
