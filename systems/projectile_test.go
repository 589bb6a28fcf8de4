package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runFrames steps projectiles and cleanup until hit reports true or the
// frame budget runs out, returning the number of frames played.
func runFrames(e *ecs.ECS, budget int, hit func() bool) int {
	for i := 1; i <= budget; i++ {
		UpdateProjectiles(e)
		CleanupRosters(e)
		if hit() {
			return i
		}
	}
	return budget + 1
}

func TestShurikenHitsEnemy(t *testing.T) {
	for _, withSpace := range []bool{true, false} {
		e := newTestECS()
		if withSpace {
			factory.CreateSpace(e, 320, 240, 16, 16)
		}
		// Star hitbox starts at (96, 104), the enemy 20px to its right.
		factory.CreateShuriken(e, 100, 108, 1)
		enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 116, 104)

		frames := runFrames(e, 10, func() bool {
			return components.Health.Get(enemy).Current < cfg.Enemy.Types[cfg.TypeEnemy].Health
		})

		assert.Equal(t, 7, frames, "space=%v", withSpace)
		assert.Equal(t, 40, components.Health.Get(enemy).Current)
		assert.Equal(t, cfg.Projectile.Shuriken.KnockbackX, components.Enemy.Get(enemy).KnockbackX)
		assert.Equal(t, cfg.Projectile.Shuriken.KnockbackY, components.Enemy.Get(enemy).KnockbackY)
		// The star is gone in the same frame it landed.
		assert.Equal(t, 0, count(e.World, tags.Projectile))
	}
}

func TestShurikenThrownLeftMirrorsKnockback(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 80, 100)
	factory.CreateShuriken(e, 100, 108, -1)

	runFrames(e, 10, func() bool { return count(e.World, tags.Projectile) == 0 })

	assert.Equal(t, -cfg.Projectile.Shuriken.KnockbackX, components.Enemy.Get(enemy).KnockbackX)
}

func TestShurikenHitsOnlyOneEnemy(t *testing.T) {
	e := newTestECS()
	first := factory.CreateEnemy(e, cfg.TypeEnemy, 110, 100)
	second := factory.CreateEnemy(e, cfg.TypeEnemy, 110, 100)
	factory.CreateShuriken(e, 100, 108, 1)

	runFrames(e, 10, func() bool { return count(e.World, tags.Projectile) == 0 })

	damaged := 0
	for _, enemy := range []*donburi.Entry{first, second} {
		if components.Health.Get(enemy).Current < cfg.Enemy.Types[cfg.TypeEnemy].Health {
			damaged++
		}
	}
	assert.Equal(t, 1, damaged)
}

func TestRedShurikenHitsPlayerNotEnemies(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 320, 240, 16, 16)
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 104, 100)
	player := factory.CreatePlayer(e, 120, 100)
	factory.CreateRedShuriken(e, 100, 108, 1)

	runFrames(e, 20, func() bool { return count(e.World, tags.Projectile) == 0 })

	assert.Equal(t, cfg.Enemy.Types[cfg.TypeEnemy].Health, components.Health.Get(enemy).Current)
	assert.Equal(t, cfg.Player.Health-cfg.Projectile.RedShuriken.Damage, components.Health.Get(player).Current)
	assert.Equal(t, cfg.Projectile.RedShuriken.KnockbackX, components.Physics.Get(player).VelocityX)
}

func TestShurikenExpiresWithAnimation(t *testing.T) {
	e := newTestECS()
	star := factory.CreateShuriken(e, 0, 0, 1)
	lifetime := len(components.Animation.Get(star).Current.Frames) * components.Animation.Get(star).Current.ImgDuration

	for i := 0; i < lifetime-2; i++ {
		UpdateProjectiles(e)
		CleanupRosters(e)
	}
	require.Equal(t, 1, count(e.World, tags.Projectile))
	assert.Equal(t, float64(2*(lifetime-2)), components.Object.Get(star).X+cfg.Projectile.Shuriken.HitboxW/2)

	UpdateProjectiles(e)
	CleanupRosters(e)
	assert.Equal(t, 0, count(e.World, tags.Projectile))
}

func TestShurikenThrownLeftPlaysReversed(t *testing.T) {
	e := newTestECS()
	star := factory.CreateShuriken(e, 0, 0, -1)
	anim := components.Animation.Get(star)

	assert.True(t, anim.Flip)
	assert.Equal(t, []int{3, 2, 1, 0}, anim.Current.Frames)
	assert.Equal(t, -cfg.Projectile.Shuriken.Speed, components.Physics.Get(star).VelocityX)
}
