package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Boss        = donburi.NewTag().SetName("Boss")
	Projectile  = donburi.NewTag().SetName("Projectile")
	Shuriken    = donburi.NewTag().SetName("Shuriken")
	RedShuriken = donburi.NewTag().SetName("RedShuriken")
	Leaf        = donburi.NewTag().SetName("Leaf")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
