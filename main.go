package main

import (
	"flag"
	"log"

	"github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/fonts"
	"github.com/automoto/boxhop/scenes"
	"github.com/automoto/boxhop/systems/persistence"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewPlatformerScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 16); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 32); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.Hint, goregular.TTF, 18)
}

func main() {
	flag.BoolVar(&config.Debug.LogEvents, "log-events", false, "log deaths, checkpoints and level completion")
	flag.BoolVar(&config.Debug.ShowState, "show-state", false, "show the player's movement state on the HUD")
	flag.Parse()

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Frame.TPS)

	// Initialize persistence; the game still runs without it
	if err := persistence.Init(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
