package factory

import (
	"strings"

	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Projectile kinds, also the second half of their animation keys.
const (
	KindShuriken    = "shuriken"
	KindRedShuriken = "red_shuriken"
)

// CreateShuriken throws a player star from the centre point cx, cy. A negative
// dirX throws it to the left.
func CreateShuriken(ecs *ecs.ECS, cx, cy, dirX float64) *donburi.Entry {
	return createProjectile(ecs, archetypes.Shuriken.Spawn(ecs), KindShuriken, cfg.Projectile.Shuriken, cx, cy, dirX)
}

// CreateRedShuriken throws a boss star at the player.
func CreateRedShuriken(ecs *ecs.ECS, cx, cy, dirX float64) *donburi.Entry {
	return createProjectile(ecs, archetypes.RedShuriken.Spawn(ecs), KindRedShuriken, cfg.Projectile.RedShuriken, cx, cy, dirX)
}

func createProjectile(ecs *ecs.ECS, entry *donburi.Entry, kind string, pc cfg.ProjectileTypeConfig, cx, cy, dirX float64) *donburi.Entry {
	dir := gamemath.Sign(dirX)
	if dir == 0 {
		dir = 1
	}

	obj := resolv.NewObject(cx-pc.HitboxW/2, cy-pc.HitboxH/2, pc.HitboxW, pc.HitboxH, tags.ResolvProjectile)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	kx, ky := gamemath.KnockbackFor(dir, pc.KnockbackX, pc.KnockbackY)
	components.Projectile.SetValue(entry, components.ProjectileData{
		Kind:       kind,
		Damage:     pc.Damage,
		KnockbackX: kx,
		KnockbackY: ky,
	})
	components.Physics.SetValue(entry, components.PhysicsData{VelocityX: pc.Speed * dir})

	entityType, action, _ := strings.Cut(pc.AnimationKey, "/")
	anim := &components.AnimationData{
		EntityType: entityType,
		Action:     cfg.StateID(action),
		Current:    assets.Animations.New(pc.AnimationKey),
		Flip:       dir < 0,
	}
	if dir < 0 {
		anim.Current.Reverse()
	}
	components.Animation.Set(entry, anim)

	return entry
}
