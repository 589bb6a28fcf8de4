package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // ebitenui owns the text/v2 faces
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu returns the title screen system. The first click or key
// press calls onStart.
func NewUpdateMenu(onStart func()) ecs.System {
	var keys []ebiten.Key
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		menu.Ticks++

		keys = inpututil.AppendJustPressedKeys(keys[:0])
		if len(keys) == 0 && !GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed {
			return
		}
		PlayUISound(cfg.SoundMenuSelect)
		onStart()
	}
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}

// DrawMenu draws the title and a blinking prompt.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	title := fonts.Title.Get()
	text.Draw(screen, cfg.Menu.Title, title, centerTextX(cfg.Menu.Title, title, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	if (getOrCreateMenu(e).Ticks/cfg.Menu.BlinkFrames)%2 == 1 {
		return
	}
	prompt := fonts.Regular.Get()
	text.Draw(screen, cfg.Menu.Prompt, prompt, centerTextX(cfg.Menu.Prompt, prompt, width), int(cfg.Menu.PromptY), cfg.Menu.TextColor)
}
