package scenes

import (
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// clearScreen paints the backdrop so the OS window never shows through
// before a scene has built its world.
func clearScreen(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
}
