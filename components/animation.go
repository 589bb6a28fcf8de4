package components

import (
	"github.com/automoto/ninja-platformer/assets/animations"
	"github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	EntityType string // first half of the registry key, e.g. "player"
	Action     config.StateID
	Current    *animations.Animation
	Flip       bool // facing left
	OffsetX    float64
	OffsetY    float64
}

// SetAction switches to a new action with a fresh playhead. Asking for the
// current action keeps the running animation untouched.
func (a *AnimationData) SetAction(reg *animations.Registry, action config.StateID) {
	if a.Action == action && a.Current != nil {
		return
	}
	a.Action = action
	a.Current = reg.New(animations.Key(a.EntityType, string(action)))
}

// Key returns the registry key of the running animation.
func (a *AnimationData) Key() string {
	return animations.Key(a.EntityType, string(a.Action))
}

var Animation = donburi.NewComponentType[AnimationData]()
