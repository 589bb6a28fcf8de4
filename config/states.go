package config

// StateID names an entity action. It doubles as the second half of an
// animation registry key.
type StateID string

const (
	Idle  StateID = "idle"
	Run   StateID = "run"
	Jump  StateID = "jump"
	Climb StateID = "climb"
)
