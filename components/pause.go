package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused      bool
	QuitRequested bool // leave to the level select
}

var Pause = donburi.NewComponentType[PauseData]()
