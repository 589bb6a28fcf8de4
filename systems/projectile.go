package systems

import (
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type projectileHit struct {
	target     *donburi.Entry
	player     bool
	damage     int
	knockbackX float64
	knockbackY float64
}

// UpdateProjectiles moves every star in a straight line and tests its hitbox
// against the opposing side: player stars hit enemies, red stars hit the
// player. A star dies on its first hit or when its animation has played once.
func UpdateProjectiles(ecs *ecs.ECS) {
	var hits []projectileHit

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Dead {
			return
		}
		obj := components.Object.Get(e)
		phys := components.Physics.Get(e)
		anim := components.Animation.Get(e)

		obj.X += phys.VelocityX
		obj.Y += phys.VelocityY
		obj.Update()

		if e.HasComponent(tags.RedShuriken) {
			if target, ok := hitPlayer(ecs, obj); ok {
				hits = append(hits, projectileHit{target: target, player: true, damage: p.Damage, knockbackX: p.KnockbackX, knockbackY: p.KnockbackY})
				p.Dead = true
				return
			}
		} else if target, ok := hitEnemy(ecs, obj); ok {
			hits = append(hits, projectileHit{target: target, damage: p.Damage, knockbackX: p.KnockbackX, knockbackY: p.KnockbackY})
			p.Dead = true
			return
		}

		anim.Current.Update()
		if anim.Current.Done {
			p.Dead = true
		}
	})

	for _, hit := range hits {
		if !hit.target.Valid() {
			continue
		}
		if hit.player {
			DamagePlayer(ecs, hit.target, hit.damage, hit.knockbackX, hit.knockbackY)
		} else {
			DamageEnemy(ecs, hit.target, hit.damage, hit.knockbackX, hit.knockbackY)
		}
	}
}

func hitEnemy(ecs *ecs.ECS, obj *components.ObjectData) (*donburi.Entry, bool) {
	box := obj.Rect()
	for _, e := range hitCandidates(ecs, obj, tags.ResolvEnemy, tags.Enemy) {
		if components.Enemy.Get(e).Defeated {
			continue
		}
		if components.Object.Get(e).Rect().Overlaps(box) {
			return e, true
		}
	}
	return nil, false
}

func hitPlayer(ecs *ecs.ECS, obj *components.ObjectData) (*donburi.Entry, bool) {
	box := obj.Rect()
	for _, e := range hitCandidates(ecs, obj, tags.ResolvPlayer, tags.Player) {
		if components.Player.Get(e).Dead {
			continue
		}
		if components.Object.Get(e).Rect().Overlaps(box) {
			return e, true
		}
	}
	return nil, false
}

// CleanupRosters removes defeated enemies and dead projectiles. It runs once
// all updates of the frame have returned.
func CleanupRosters(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Defeated {
			toRemove = append(toRemove, e)
		}
	})
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Dead {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeEntry(ecs, e)
	}
}
