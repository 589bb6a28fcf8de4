package factory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/shared/leveldata"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/automoto/ninja-platformer/tilemap"
)

func testLevel() *leveldata.Level {
	m := tilemap.New(16)
	for x := 0; x < 10; x++ {
		m.Add(tilemap.Tile{Type: tilemap.Grass, GridX: x, GridY: 5})
	}
	m.Add(tilemap.Tile{Type: tilemap.Tree, Variant: 0, GridX: 2, GridY: 3, Layer: 1})
	m.Add(tilemap.Tile{Type: tilemap.Tree, Variant: 2, GridX: 5, GridY: 3, Layer: 1})
	m.Add(tilemap.Tile{Type: tilemap.Ladder, GridX: 4, GridY: 4, Layer: 2})

	return &leveldata.Level{
		Width:          10,
		Height:         8,
		TileSize:       16,
		TileMap:        m,
		PlayerSpawn:    leveldata.Point{X: 32, Y: 64},
		HasPlayerSpawn: true,
		EnemySpawns:    []leveldata.Point{{X: 96, Y: 64}},
		BossSpawns:     []leveldata.Point{{X: 128, Y: 64}},
	}
}

type entryIterator interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func countTag(w donburi.World, tag entryIterator) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestPopulateLevelPrecomputesMarkers(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	lvl := testLevel()

	entry := PopulateLevel(e, cfg.LevelDef{Name: "level1"}, 0, lvl, rand.New(rand.NewSource(1)))
	level := components.Level.Get(entry)

	assert.Equal(t, []gamemath.Rect{gamemath.NewRect(36, 52, cfg.Leaf.SpawnerWidth, cfg.Leaf.SpawnerHeight)}, level.LeafSpawners)
	assert.Equal(t, []gamemath.Rect{gamemath.NewRect(64, 64, 16, 16)}, level.Ladders)

	// Markers stay in the grid so they are still drawn.
	assert.True(t, lvl.TileMap.HasCell(2, 3))
	assert.True(t, lvl.TileMap.HasCell(4, 4))
}

func TestPopulateLevelSpawnsActorsOnTheirTile(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	PopulateLevel(e, cfg.LevelDef{Name: "level1"}, 0, testLevel(), rand.New(rand.NewSource(1)))

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	obj := components.Object.Get(player)
	assert.Equal(t, 32.0, obj.X)
	assert.Equal(t, 80-cfg.Player.Height, obj.Y)

	boss, ok := tags.Boss.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 80-cfg.Enemy.Types[cfg.TypeBoss].Height, components.Object.Get(boss).Y)

	assert.Equal(t, 2, countTag(e.World, tags.Enemy))
	assert.Equal(t, 1, countTag(e.World, tags.Boss))

	_, ok = components.Space.First(e.World)
	assert.True(t, ok)
	assert.NotNil(t, obj.Space)

	camera, ok := components.Camera.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 32+cfg.Player.Width/2-float64(cfg.C.DisplayWidth)/2, components.Camera.Get(camera).Position.X)

	clouds, ok := components.Clouds.First(e.World)
	require.True(t, ok)
	assert.Len(t, components.Clouds.Get(clouds).Clouds, cfg.Cloud.Count)
}

func TestCreateEnemyCopiesTypeConfig(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	enemy := CreateEnemy(e, cfg.TypeEnemy, 0, 0)

	data := components.Enemy.Get(enemy)
	data.TypeConfig.Speed = 99
	assert.NotEqual(t, 99.0, cfg.Enemy.Types[cfg.TypeEnemy].Speed)
	assert.Equal(t, 50, components.Health.Get(enemy).Current)
	assert.False(t, enemy.HasComponent(tags.Boss))

	assert.Panics(t, func() { CreateEnemy(e, "dragon", 0, 0) })
}

func TestProjectileKnockbackFollowsThrow(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	right := components.Projectile.Get(CreateShuriken(e, 50, 50, 1))
	left := components.Projectile.Get(CreateShuriken(e, 50, 50, -1))

	assert.Equal(t, 5.0, right.KnockbackX)
	assert.Equal(t, -2.0, right.KnockbackY)
	assert.Equal(t, -5.0, left.KnockbackX)
	assert.Equal(t, -2.0, left.KnockbackY)
}
