package components

import (
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a frame (singleton component).
// The audio system plays and clears the queue.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
