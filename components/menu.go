package components

import "github.com/yohamta/donburi"

// MenuData counts frames on the title screen for the prompt blink.
type MenuData struct {
	Ticks int
}

var Menu = donburi.NewComponentType[MenuData]()
