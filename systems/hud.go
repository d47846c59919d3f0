package systems

import (
	"fmt"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/fonts"
	"github.com/automoto/boxhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name and death counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return
	}

	line := fmt.Sprintf("%d/%d %s", level.LevelIndex+1, len(level.Levels), level.CurrentLevel.Name)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		body := components.Player.Get(playerEntry).Body
		line += fmt.Sprintf("  deaths: %d", body.Deaths())

		if entry, ok := components.Progress.First(ecs.World); ok {
			line += fmt.Sprintf("  total: %d", components.Progress.Get(entry).TotalDeaths)
		}
		if cfg.Debug.ShowState {
			line += fmt.Sprintf("  [%s]", body.State())
		}
	}

	// text.Draw takes the baseline, not the top edge
	face := fonts.HUD.Get()
	y := cfg.HUD.Margin + face.Metrics().Ascent.Ceil()
	text.Draw(screen, line, face, cfg.HUD.Margin, y, cfg.HUD.TextColor)
}
