package config

import (
	"image/color"

	"github.com/automoto/boxhop/shared/physics"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Size of the square player body in pixels. Tuning is scaled from it.
	Size   float64
	Tuning physics.Tuning
	Color  color.RGBA
}

// LevelConfig contains level layout configuration
type LevelConfig struct {
	TileSize   float64
	Dir        string // directory of the embedded level set
	CellSize   int    // broad phase bucket size
	Background color.RGBA
}

// BounceConfig contains bounce pad configuration
type BounceConfig struct {
	// Speed is the push-away speed for a reference-size body (units per ms)
	Speed float64
}

// ParticleConfig contains particle effect configuration
type ParticleConfig struct {
	Tuning physics.ParticleTuning
	Seed   uint64
}

// CheckpointConfig contains checkpoint break effect configuration
type CheckpointConfig struct {
	BreakDuration float64 // ms for the shrink/fade tween
}

// ScreenShakeConfig contains screen shake configuration
type ScreenShakeConfig struct {
	DeathIntensity float64 // max offset in pixels
	DeathDuration  int     // frames
}

// FrameConfig contains frame timing configuration
type FrameConfig struct {
	// MaxDelta caps a frame's elapsed time in ms so a stall cannot tunnel
	// the player through thin tiles.
	MaxDelta float64
	TPS      int
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	Title        string
	ContinueHint string
	FinalTitle   string
	FinalHint    string
	TitleY       float64
	HintY        float64
}

// HUDConfig contains HUD text configuration
type HUDConfig struct {
	TextColor color.RGBA
	Margin    int
}

// PersistenceConfig contains save data configuration
type PersistenceConfig struct {
	AppName     string
	ProgressKey string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Level LevelConfig
var Bounce BounceConfig
var Particles ParticleConfig
var Checkpoint CheckpointConfig
var Frame FrameConfig
var ScreenShake ScreenShakeConfig
var LevelComplete LevelCompleteConfig
var HUD HUDConfig
var Persistence PersistenceConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogEvents bool // log deaths, checkpoints and level completion
	ShowState bool // draw the player's movement state on the HUD
	ShowBoxes bool // outline broad phase candidates, toggled with F1
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	Red          = color.RGBA{R: 230, G: 50, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	DarkBlue     = color.RGBA{R: 20, G: 24, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// TileColors maps each obstacle kind to its fill color
var TileColors = map[physics.Kind]color.RGBA{
	physics.KindNormal:     Gray,
	physics.KindHazard:     Red,
	physics.KindGoal:       BrightGreen,
	physics.KindBounce:     Orange,
	physics.KindCheckpoint: BrightYellow,
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 960,
		Title:  "boxhop",
	}

	Player = PlayerConfig{
		Size:   25,
		Tuning: physics.DefaultTuning(25),
		Color:  LightBlue,
	}

	Level = LevelConfig{
		TileSize:   40,
		Dir:        "levels",
		CellSize:   40,
		Background: DarkBlue,
	}

	Bounce = BounceConfig{
		Speed: 0.5,
	}

	Particles = ParticleConfig{
		Tuning: physics.DefaultParticleTuning(),
		Seed:   1,
	}

	Checkpoint = CheckpointConfig{
		BreakDuration: 300,
	}

	ScreenShake = ScreenShakeConfig{
		DeathIntensity: 6.0,
		DeathDuration:  12,
	}

	Frame = FrameConfig{
		MaxDelta: 33,
		TPS:      60,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightYellow,
		HintColor:    White,
		Title:        "Level Complete!",
		ContinueHint: "Press JUMP for the next level",
		FinalTitle:   "All levels complete!",
		FinalHint:    "Press R to play again",
		TitleY:       440,
		HintY:        500,
	}

	HUD = HUDConfig{
		TextColor: White,
		Margin:    10,
	}

	Persistence = PersistenceConfig{
		AppName:     "boxhop",
		ProgressKey: "progress",
	}
}
