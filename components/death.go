package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IrisData drives the closing circle shown after the player dies. The level
// is rebuilt once the radius reaches zero.
type IrisData struct {
	Radius float64
	Tween  *gween.Tween
	Done   bool
}

var Iris = donburi.NewComponentType[IrisData]()
