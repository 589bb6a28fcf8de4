package systems

import (
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the scroll toward the player so the player sits in the
// middle of the display.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := firstPlayer(e)
	if !ok {
		return
	}
	cx, cy := components.Object.Get(playerEntry).Rect().Center()

	targetX := cx - float64(config.C.DisplayWidth)/2
	targetY := cy - float64(config.C.DisplayHeight)/2

	camera.Position.X += (targetX - camera.Position.X) / config.Camera.FollowDivisor
	camera.Position.Y += (targetY - camera.Position.Y) / config.Camera.FollowDivisor
}
