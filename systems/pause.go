package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // ebitenui owns the text/v2 faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause and handles the quit key while paused.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if player, ok := firstPlayer(ecs); ok && components.Player.Get(player).Dead {
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		PlaySFX(ecs, cfg.SoundMenuSelect)
		if pause.IsPaused {
			PauseMusic()
		} else {
			ResumeMusic()
		}
	}

	if pause.IsPaused && GetAction(input, cfg.ActionQuit).JustPressed {
		pause.QuitRequested = true
	}
}

// DrawPause renders the pause overlay and panel.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	panelW, panelH := width/2, height/3
	panelX, panelY := (width-panelW)/2, (height-panelH)/2
	vector.FillRect(screen, panelX, panelY, panelW, panelH, cfg.Pause.PanelColor, false)
	vector.StrokeRect(screen, panelX, panelY, panelW, panelH, 2, cfg.Pause.BorderColor, false)

	titleFace := fonts.Title.Get()
	titleX := centerTextX(cfg.Pause.Title, titleFace, float64(width))
	text.Draw(screen, cfg.Pause.Title, titleFace, titleX, int(panelY)+24, cfg.Pause.TextColor)

	hintFace := fonts.Small.Get()
	hintX := centerTextX(cfg.Pause.Hint, hintFace, float64(width))
	text.Draw(screen, cfg.Pause.Hint, hintFace, hintX, int(panelY+panelH)-12, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
