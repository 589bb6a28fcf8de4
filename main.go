package main

import (
	"image"
	"os"
	"time"

	"github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/scenes"
	"github.com/automoto/ninja-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewStartScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout renders at the logical display size; ebiten scales it to the window.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.DisplayWidth, config.C.DisplayHeight)
	return config.C.DisplayWidth, config.C.DisplayHeight
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	level := zerolog.InfoLevel
	if config.Debug.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(config.Debug.LogLevel)
		if err != nil {
			log.Warn().Err(err).Str("level", config.Debug.LogLevel).Msg("unknown log level")
		} else {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
}

func main() {
	setupLogging()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("progress will not be saved")
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
