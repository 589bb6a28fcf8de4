package factory

import (
	"math/rand"

	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/shared/leveldata"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Tree variants that drop leaves.
var leafTrees = []tilemap.TypeVariant{
	{Type: tilemap.Tree, Variant: 0},
	{Type: tilemap.Tree, Variant: 1},
}

var ladderTiles = []tilemap.TypeVariant{
	{Type: tilemap.Ladder, Variant: 0},
}

// CreateLevel stores the parsed level and precomputes its leaf spawners and
// ladder rectangles. Marker tiles stay in the grid so they are still drawn.
func CreateLevel(ecs *ecs.ECS, def cfg.LevelDef, index int, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	data := &components.LevelData{
		Def:   def,
		Index: index,
		Level: lvl,
	}

	for _, tree := range lvl.TileMap.Extract(leafTrees, true) {
		data.LeafSpawners = append(data.LeafSpawners,
			gamemath.NewRect(tree.X+4, tree.Y+4, cfg.Leaf.SpawnerWidth, cfg.Leaf.SpawnerHeight))
	}

	ts := float64(lvl.TileMap.TileSize)
	for _, ladder := range lvl.TileMap.Extract(ladderTiles, true) {
		data.Ladders = append(data.Ladders, gamemath.NewRect(ladder.X, ladder.Y, ts, ts))
	}

	components.Level.Set(level, data)
	return level
}

// PopulateLevel builds all per-level state from a parsed level: collision
// space, level data, actors, camera and clouds. Spawn points mark the tile an
// actor stands in, so taller actors are lifted to rest on its bottom edge.
func PopulateLevel(ecs *ecs.ECS, def cfg.LevelDef, index int, lvl *leveldata.Level, rng *rand.Rand) *donburi.Entry {
	ts := lvl.TileMap.TileSize
	CreateSpace(ecs, max(int(lvl.PixelWidth()), ts), max(int(lvl.PixelHeight()), ts), ts, ts)

	level := CreateLevel(ecs, def, index, lvl)

	spawn := lvl.PlayerSpawn
	CreatePlayer(ecs, spawn.X, standY(spawn.Y, ts, cfg.Player.Height))

	for _, p := range lvl.EnemySpawns {
		CreateEnemy(ecs, cfg.TypeEnemy, p.X, standY(p.Y, ts, cfg.Enemy.Types[cfg.TypeEnemy].Height))
	}
	for _, p := range lvl.BossSpawns {
		CreateBoss(ecs, p.X, standY(p.Y, ts, cfg.Enemy.Types[cfg.TypeBoss].Height))
	}

	CreateCamera(ecs,
		spawn.X+cfg.Player.Width/2-float64(cfg.C.DisplayWidth)/2,
		spawn.Y+cfg.Player.Height/2-float64(cfg.C.DisplayHeight)/2)
	CreateClouds(ecs, rng)

	return level
}

func standY(y float64, tileSize int, height float64) float64 {
	return y + float64(tileSize) - height
}
