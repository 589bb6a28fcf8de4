package components

import (
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the bounding box of an actor or projectile. X/Y is the
// top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the current box.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
