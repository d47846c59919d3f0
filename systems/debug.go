package systems

import (
	"image/color"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/automoto/boxhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugCandidateColor = color.RGBA{0, 255, 255, 255}
	debugPlayerColor    = color.RGBA{0, 0, 255, 255}
)

// UpdateDebug toggles the broad phase overlay with F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	}
}

// DrawDebug outlines the obstacles the broad phase hands to the player's
// narrow phase this tick.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	world := components.Level.Get(levelEntry).World
	if world == nil {
		return
	}

	body := components.Player.Get(playerEntry).Body
	box := body.AABB()
	for _, o := range world.Obstacles.Candidates(box.Expand(max(box.Width, box.Height))) {
		drawOutline(screen, o.Box, debugCandidateColor)
	}
	drawOutline(screen, box, debugPlayerColor)
}

func drawOutline(screen *ebiten.Image, b gamemath.AABB, c color.RGBA) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, 1, c, false)     // Top
	vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.DrawFilledRect(screen, x, y, 1, h, c, false)     // Left
	vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false) // Right
}
