package components

import "github.com/yohamta/donburi"

// Collisions records which sides of a box touched a solid tile during the
// last update. The flags are cleared at the start of every update.
type Collisions struct {
	Up, Down, Left, Right bool
}

type PhysicsData struct {
	VelocityX  float64 // carries gravity, knockback and inertia
	VelocityY  float64
	Collisions Collisions
}

var Physics = donburi.NewComponentType[PhysicsData]()
