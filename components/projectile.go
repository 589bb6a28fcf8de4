package components

import "github.com/yohamta/donburi"

// ProjectileData is a thrown star. Velocity lives in Physics, the hitbox is
// the Object box.
type ProjectileData struct {
	Kind       string
	Damage     int
	KnockbackX float64 // fixed at throw time from the throw direction
	KnockbackY float64
	Dead       bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
