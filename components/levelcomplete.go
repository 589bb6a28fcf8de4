package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	Timer      int  // frames the banner has been shown
	Finished   bool // banner done, scene should leave
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
