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
)

func TestEnemyChasesPlayer(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 0)
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 0, 0)

	UpdateEnemies(e)

	speed := cfg.Enemy.Types[cfg.TypeEnemy].Speed
	assert.Equal(t, speed, components.Enemy.Get(enemy).IntentX)
	assert.Equal(t, speed, components.Object.Get(enemy).X)
	assert.Equal(t, cfg.Run, components.Animation.Get(enemy).Action)
	assert.False(t, components.Animation.Get(enemy).Flip)
}

func TestEnemyIdlesWithoutTarget(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 10, 0)

	UpdateEnemies(e)

	assert.Equal(t, 0.0, components.Enemy.Get(enemy).IntentX)
	assert.Equal(t, 10.0, components.Object.Get(enemy).X)
	assert.Equal(t, cfg.Idle, components.Animation.Get(enemy).Action)
}

func TestEnemyKnockbackDecays(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 0, 0)
	data := components.Enemy.Get(enemy)
	data.KnockbackX = 5

	UpdateEnemies(e)
	assert.Equal(t, 5.0, components.Object.Get(enemy).X)
	assert.InDelta(t, 4.5, data.KnockbackX, 1e-9)

	for i := 0; i < 100; i++ {
		UpdateEnemies(e)
	}
	assert.Equal(t, 0.0, data.KnockbackX)
	assert.Equal(t, 0.0, data.KnockbackY)
}

func TestEnemyAvoidsLedge(t *testing.T) {
	e := newTestECS()
	newTestLevel(e, groundMap(1, 0, 2), 20, 10)
	factory.CreatePlayer(e, 200, 0)

	safe := factory.CreateEnemy(e, cfg.TypeEnemy, 21, 0)
	edge := factory.CreateEnemy(e, cfg.TypeEnemy, 37, 0)

	UpdateEnemies(e)

	assert.Greater(t, components.Enemy.Get(safe).IntentX, 0.0)
	assert.Equal(t, 0.0, components.Enemy.Get(edge).IntentX)
	assert.Equal(t, 37.0, components.Object.Get(edge).X)
}

func TestLedgeAvoidKeepsKnockback(t *testing.T) {
	e := newTestECS()
	newTestLevel(e, groundMap(1, 0, 2), 20, 10)
	factory.CreatePlayer(e, 200, 0)
	edge := factory.CreateEnemy(e, cfg.TypeEnemy, 37, 0)
	components.Enemy.Get(edge).KnockbackX = 2

	UpdateEnemies(e)

	assert.Equal(t, 39.0, components.Object.Get(edge).X)
}

func TestContactDamagePushesPlayerOut(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 0)
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 97, 0)
	components.Enemy.Get(enemy).IntentX = 0.5
	tc := cfg.Enemy.Types[cfg.TypeEnemy]

	ResolveContactDamage(e)

	assert.Equal(t, cfg.Player.Health-tc.ContactDamage, components.Health.Get(player).Current)
	assert.Equal(t, 103.0, components.Object.Get(player).X)
	assert.Equal(t, tc.ContactKnockbackX, components.Physics.Get(player).VelocityX)
	assert.Equal(t, tc.ContactKnockbackY, components.Physics.Get(player).VelocityY)
	assert.Equal(t, tc.ContactCooldown, components.Enemy.Get(enemy).ContactCooldown)

	// Still overlapping, but the cooldown blocks a second hit.
	components.Object.Get(player).X = 100
	ResolveContactDamage(e)
	assert.Equal(t, cfg.Player.Health-tc.ContactDamage, components.Health.Get(player).Current)
}

func TestContactDamageUsesFacingWhenIdle(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 0)
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 97, 0)
	components.Animation.Get(enemy).Flip = true
	tc := cfg.Enemy.Types[cfg.TypeEnemy]

	ResolveContactDamage(e)

	assert.Equal(t, 97-cfg.Player.Width, components.Object.Get(player).X)
	assert.Equal(t, -tc.ContactKnockbackX, components.Physics.Get(player).VelocityX)
}

func TestContactDamageNeedsOverlap(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 0)
	factory.CreateEnemy(e, cfg.TypeEnemy, 106, 0)

	ResolveContactDamage(e)

	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
}

func TestEnemyRosterRemovesDefeatedOnce(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 320, 240, 16, 16)
	enemy := factory.CreateEnemy(e, cfg.TypeEnemy, 50, 50)
	factory.CreateEnemy(e, cfg.TypeEnemy, 150, 50)

	for i := 0; i < 3; i++ {
		DamageEnemy(e, enemy, 10, 5, -2)
		CleanupRosters(e)
	}
	assert.Equal(t, 20, components.Health.Get(enemy).Current)
	require.Equal(t, 2, count(e.World, tags.Enemy))

	DamageEnemy(e, enemy, 10, 5, -2)
	CleanupRosters(e)
	assert.Equal(t, 10, components.Health.Get(enemy).Current)
	require.Equal(t, 2, count(e.World, tags.Enemy))

	DamageEnemy(e, enemy, 10, 5, -2)
	assert.True(t, components.Enemy.Get(enemy).Defeated)

	CleanupRosters(e)
	assert.Equal(t, 1, count(e.World, tags.Enemy))
	assert.False(t, enemy.Valid())

	CleanupRosters(e)
	assert.Equal(t, 1, count(e.World, tags.Enemy))
}

func TestBossThrowsAtPlayer(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	boss := factory.CreateBoss(e, 100, 0)
	require.True(t, boss.HasComponent(tags.Enemy))
	components.Enemy.Get(boss).AttackCooldown = 1

	UpdateEnemies(e)

	assert.Equal(t, 1, count(e.World, tags.RedShuriken))
	assert.Equal(t, cfg.Enemy.Types[cfg.TypeBoss].AttackCooldown, components.Enemy.Get(boss).AttackCooldown)
	tags.RedShuriken.Each(e.World, func(star *donburi.Entry) {
		assert.Equal(t, -cfg.Projectile.RedShuriken.Speed, components.Physics.Get(star).VelocityX)
	})
}

func TestBossDodgesNearbyShuriken(t *testing.T) {
	e := newTestECS()
	boss := factory.CreateBoss(e, 100, 0)
	components.Physics.Get(boss).Collisions.Down = true
	cx, cy := components.Object.Get(boss).Rect().Center()
	factory.CreateShuriken(e, cx-20, cy, 1)

	UpdateEnemies(e)

	tc := cfg.Enemy.Types[cfg.TypeBoss]
	assert.Equal(t, -tc.DodgeSpeed, components.Object.Get(boss).Y)
	assert.Equal(t, tc.DodgeCooldown, components.Enemy.Get(boss).DodgeCooldown)
}
