package main

import (
	"flag"
	"log"

	"github.com/automoto/followtheleader/assets"
	"github.com/automoto/followtheleader/config"
	"github.com/automoto/followtheleader/fonts"
	"github.com/automoto/followtheleader/logging"
	"github.com/automoto/followtheleader/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Size() (int, int)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	layout := assets.MustLoadLayout(config.C.ScenePath)
	return &Game{
		scene: scenes.NewGameScene(layout),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the scene's logical size; ebiten scales it to the window.
func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Size()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	debug := flag.Bool("debug", false, "draw the playable area and the debug HUD, log at debug level")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		config.Debug.Enabled = true
	}

	if err := logging.Init(config.Debug.Enabled); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Sync()

	if err := fonts.LoadDefaults(config.Debug.HUDFontSize); err != nil {
		logging.L().Fatal("Failed to load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Follow The Leader")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logging.L().Fatal("Game exited with error", zap.Error(err))
	}
}
