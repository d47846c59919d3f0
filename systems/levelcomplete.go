package systems

import (
	"log"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/fonts"
	"github.com/automoto/boxhop/systems/factory"
	"github.com/automoto/boxhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateLevelComplete handles input when level complete overlay is shown
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.Ready() {
		return
	}

	input := getOrCreateInput(e)

	if levelComplete.AllComplete {
		if GetAction(input, cfg.ActionRestart).JustPressed {
			restartRun(e)
		}
		return
	}

	if GetAction(input, cfg.ActionJump).JustPressed {
		advanceLevel(e)
	}
}

// advanceLevel loads the level after the current one and records it as the
// resume point.
func advanceLevel(e *ecs.ECS) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	next := components.Level.Get(entry).LevelIndex + 1
	if err := factory.LoadLevel(e, next); err != nil {
		log.Printf("Warning: Could not load level %d: %v", next, err)
		return
	}
	setProgressLevel(e, components.Level.Get(entry).LevelIndex)
}

// restartRun starts the level set over with a clean death count.
func restartRun(e *ecs.ECS) {
	if err := factory.LoadLevel(e, 0); err != nil {
		log.Printf("Warning: Could not restart: %v", err)
		return
	}
	if p, ok := tags.Player.First(e.World); ok {
		components.Player.Get(p).Body.SetDeaths(0)
	}
	setProgressLevel(e, 0)
}

func setProgressLevel(e *ecs.ECS, index int) {
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(entry)
	progress.LevelIndex = index
	progress.Dirty = true
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	title, hint := cfg.LevelComplete.Title, cfg.LevelComplete.ContinueHint
	if levelComplete.AllComplete {
		title, hint = cfg.LevelComplete.FinalTitle, cfg.LevelComplete.FinalHint
	}

	// Draw title
	titleFont := fonts.Title.Get()
	titleX := centerTextX(title, titleFont, width)
	text.Draw(screen, title, titleFont, titleX, int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	// Draw continue hint
	hintFont := fonts.Hint.Get()
	hintX := centerTextX(hint, hintFont, width)
	text.Draw(screen, hint, hintFont, hintX, int(cfg.LevelComplete.HintY), cfg.LevelComplete.HintColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}
