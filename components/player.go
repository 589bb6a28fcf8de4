package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	AirTime          int     // frames since last grounded
	ShurikenCooldown int     // frames until the next throw is allowed
	IntentX          float64 // horizontal input intent of the current frame
	Dead             bool
}

var Player = donburi.NewComponentType[PlayerData]()
