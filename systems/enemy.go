package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type throwRequest struct {
	cx, cy, dir float64
}

// UpdateEnemies runs the chase AI, knockback and the kernel for every enemy
// and boss, then lets throwing enemies fire.
func UpdateEnemies(ecs *ecs.ECS) {
	tiles := levelTiles(ecs)
	solids := solidsOf(tiles)

	var target *components.ObjectData
	if playerEntry, ok := firstPlayer(ecs); ok && !components.Player.Get(playerEntry).Dead {
		target = components.Object.Get(playerEntry)
	}

	var stars [][2]float64
	tags.Shuriken.Each(ecs.World, func(e *donburi.Entry) {
		cx, cy := components.Object.Get(e).Rect().Center()
		stars = append(stars, [2]float64{cx, cy})
	})

	var throws []throwRequest

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Defeated {
			return
		}
		tc := enemy.TypeConfig
		obj := components.Object.Get(e)
		phys := components.Physics.Get(e)
		anim := components.Animation.Get(e)

		tickCooldowns(enemy)

		intentX := 0.0
		if target != nil {
			switch {
			case target.X > obj.X:
				intentX = tc.Speed
			case target.X < obj.X:
				intentX = -tc.Speed
			}
		}
		if tc.LedgeAvoid && tiles != nil {
			cx, cy := obj.Rect().Center()
			if len(tiles.PhysicsRectsAround(cx, cy)) < tc.MinGround {
				intentX = 0
			}
		}
		enemy.IntentX = intentX

		if tc.DodgeRange > 0 && enemy.DodgeCooldown == 0 && phys.Collisions.Down && starNear(obj, stars, tc.DodgeRange) {
			phys.VelocityY = -tc.DodgeSpeed
			enemy.DodgeCooldown = tc.DodgeCooldown
		}

		MoveBody(obj, phys, anim, solids, intentX+enemy.KnockbackX, enemy.KnockbackY)
		enemy.KnockbackX, enemy.KnockbackY = gamemath.DecayKnockback(enemy.KnockbackX, enemy.KnockbackY)

		if intentX != 0 {
			anim.SetAction(assets.Animations, cfg.Run)
		} else {
			anim.SetAction(assets.Animations, cfg.Idle)
		}

		if fellOut(ecs, obj) {
			enemy.Defeated = true
			return
		}

		if tc.Throws && target != nil && enemy.AttackCooldown == 0 {
			cx, cy := obj.Rect().Center()
			tx, _ := target.Rect().Center()
			dir := gamemath.Sign(tx - cx)
			if dir == 0 {
				dir = 1
			}
			throws = append(throws, throwRequest{cx: cx, cy: cy, dir: dir})
			enemy.AttackCooldown = tc.AttackCooldown
		}
	})

	for _, t := range throws {
		factory.CreateRedShuriken(ecs, t.cx, t.cy, t.dir)
		PlaySFX(ecs, cfg.SoundThrow)
	}
}

func tickCooldowns(enemy *components.EnemyData) {
	if enemy.ContactCooldown > 0 {
		enemy.ContactCooldown--
	}
	if enemy.AttackCooldown > 0 {
		enemy.AttackCooldown--
	}
	if enemy.DodgeCooldown > 0 {
		enemy.DodgeCooldown--
	}
}

func starNear(obj *components.ObjectData, stars [][2]float64, dist float64) bool {
	cx, cy := obj.Rect().Center()
	for _, s := range stars {
		if math.Hypot(s[0]-cx, s[1]-cy) <= dist {
			return true
		}
	}
	return false
}

type contactHit struct {
	enemy      *donburi.Entry
	knockbackX float64
	knockbackY float64
	dir        float64
}

// ResolveContactDamage hurts the player when an enemy touches them, then
// pushes the player out of the enemy's box on the side the enemy is moving
// toward. Runs after UpdateEnemies.
func ResolveContactDamage(ecs *ecs.ECS) {
	playerEntry, ok := firstPlayer(ecs)
	if !ok || components.Player.Get(playerEntry).Dead {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	var hits []contactHit
	for _, e := range hitCandidates(ecs, playerObj, tags.ResolvEnemy, tags.Enemy) {
		enemy := components.Enemy.Get(e)
		if enemy.Defeated || enemy.ContactCooldown > 0 {
			continue
		}
		obj := components.Object.Get(e)
		if !obj.Rect().Overlaps(playerObj.Rect()) {
			continue
		}

		dir := gamemath.Sign(enemy.IntentX)
		if dir == 0 {
			dir = 1
			if components.Animation.Get(e).Flip {
				dir = -1
			}
		}
		kx, ky := gamemath.KnockbackFor(dir, enemy.TypeConfig.ContactKnockbackX, enemy.TypeConfig.ContactKnockbackY)
		hits = append(hits, contactHit{enemy: e, knockbackX: kx, knockbackY: ky, dir: dir})
		enemy.ContactCooldown = enemy.TypeConfig.ContactCooldown
	}

	for _, hit := range hits {
		enemy := components.Enemy.Get(hit.enemy)
		DamagePlayer(ecs, playerEntry, enemy.TypeConfig.ContactDamage, hit.knockbackX, hit.knockbackY)

		box := components.Object.Get(hit.enemy).Rect()
		if hit.dir > 0 {
			playerObj.X = box.Right()
		} else {
			playerObj.X = box.X - playerObj.W
		}
		playerObj.Update()
	}
}

// DamageEnemy subtracts health and replaces the enemy's knockback. At zero
// health the enemy is flagged for removal from the roster.
func DamageEnemy(ecs *ecs.ECS, entry *donburi.Entry, amount int, knockbackX, knockbackY float64) {
	enemy := components.Enemy.Get(entry)
	if enemy.Defeated {
		return
	}

	health := components.Health.Get(entry)
	health.Current -= amount
	enemy.KnockbackX = knockbackX
	enemy.KnockbackY = knockbackY
	PlaySFX(ecs, cfg.SoundDamage)

	if health.Current <= 0 {
		enemy.Defeated = true
		PlaySFX(ecs, cfg.SoundDeath)
		log.Debug().Str("type", enemy.TypeName).Msg("enemy defeated")
	}
}

// entryIterator is satisfied by donburi component and tag types.
type entryIterator interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

// hitCandidates returns the live entries near obj. The resolv space narrows
// the search when obj is in one; otherwise every entry with the tag is
// returned. Callers still test exact overlap.
func hitCandidates(ecs *ecs.ECS, obj *components.ObjectData, resolvTag string, tag entryIterator) []*donburi.Entry {
	var out []*donburi.Entry
	if obj.Space == nil {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			out = append(out, e)
		})
		return out
	}

	check := obj.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(resolvTag) {
		if e, ok := o.Data.(*donburi.Entry); ok && e != nil && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
