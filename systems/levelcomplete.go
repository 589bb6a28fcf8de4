package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/fonts"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // ebitenui owns the text/v2 faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateLevelComplete marks the level complete once no enemy or boss is left,
// records the completion and counts down the banner.
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)

	if !levelComplete.IsComplete {
		if _, ok := tags.Enemy.First(e.World); ok {
			return
		}
		if player, ok := firstPlayer(e); !ok || components.Player.Get(player).Dead {
			return
		}
		level, ok := currentLevel(e)
		if !ok {
			return
		}

		levelComplete.IsComplete = true
		PlaySFX(e, cfg.SoundLevelComplete)
		MarkLevelCompleted(level.Def.Name)
		log.Info().Str("level", level.Def.Name).Msg("level complete")
		return
	}

	levelComplete.Timer++
	if levelComplete.Timer >= cfg.LevelComplete.DisplayFrames {
		levelComplete.Finished = true
	}
}

// DrawLevelComplete renders the level complete banner
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, float32(height/2-20), float32(width), 40, cfg.LevelComplete.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2)+6, cfg.LevelComplete.TitleColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.LevelComplete))
	}
	return components.LevelComplete.Get(entry)
}
