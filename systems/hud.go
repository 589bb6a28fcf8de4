package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health bar in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := firstPlayer(ecs)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	x, y := float32(cfg.UI.HUDBarX), float32(cfg.UI.HUDBarY)
	w, h := float32(cfg.UI.HUDBarWidth), float32(cfg.UI.HUDBarHeight)
	b := float32(cfg.UI.HUDBarBorder)

	vector.FillRect(screen, x-b, y-b, w+2*b, h+2*b, cfg.UI.HealthBarBorderColor, false)
	vector.FillRect(screen, x, y, w, h, cfg.UI.HealthBarBgColor, false)
	vector.FillRect(screen, x, y, w*float32(hp.Ratio()), h, cfg.UI.HealthBarFgColor, false)
}
