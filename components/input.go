package components

import (
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi"
)

// ActionState is one action seen across two frames.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds two frames of action state. The zero value means nothing
// is held.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
