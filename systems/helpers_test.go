package systems

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/shared/leveldata"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// newTestLevel registers a level of w x h tiles backed by m.
func newTestLevel(e *ecs.ECS, m *tilemap.TileMap, w, h int) *components.LevelData {
	entry := archetypes.Level.Spawn(e)
	data := &components.LevelData{
		Level: &leveldata.Level{
			Width:    w,
			Height:   h,
			TileSize: m.TileSize,
			TileMap:  m,
		},
	}
	components.Level.Set(entry, data)
	return data
}

// groundMap returns a 16px map with a grass row at gridY spanning from..to.
func groundMap(gridY, from, to int) *tilemap.TileMap {
	m := tilemap.New(16)
	for x := from; x <= to; x++ {
		m.Add(tilemap.Tile{Type: tilemap.Grass, GridX: x, GridY: gridY})
	}
	return m
}

func count(w donburi.World, it entryIterator) int {
	n := 0
	it.Each(w, func(*donburi.Entry) { n++ })
	return n
}
