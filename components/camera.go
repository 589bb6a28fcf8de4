package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the scroll: the world position of the top-left corner of
// the display.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
