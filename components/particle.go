package components

import (
	"github.com/automoto/ninja-platformer/assets/animations"
	"github.com/yohamta/donburi"
)

// ParticleData is an ambient particle drawn over the level. Particles take no
// part in collision.
type ParticleData struct {
	Kind       string
	X, Y       float64 // centre
	VelocityX  float64
	VelocityY  float64
	StartFrame int
	Animation  *animations.Animation
}

var Particle = donburi.NewComponentType[ParticleData]()

// Cloud is one parallax cloud.
type Cloud struct {
	X, Y    float64
	Speed   float64
	Depth   float64
	Variant int
}

type CloudsData struct {
	Clouds []Cloud
}

var Clouds = donburi.NewComponentType[CloudsData]()
