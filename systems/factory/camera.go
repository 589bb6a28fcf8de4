package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the scroll at x, y.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}
