package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/ninja-platformer/shared/gamemath"
)

func groundRow(m *TileMap, y, from, to int) {
	for x := from; x <= to; x++ {
		m.Add(Tile{Type: Grass, Variant: 0, GridX: x, GridY: y, Layer: 0})
	}
}

func TestTilesAroundCoversThreeByThree(t *testing.T) {
	m := New(16)
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			m.Add(Tile{Type: Decor, GridX: x, GridY: y})
		}
	}

	tiles := m.TilesAround(8, 8)
	require.Len(t, tiles, 9)
	for _, tile := range tiles {
		assert.LessOrEqual(t, tile.GridX, 1)
		assert.GreaterOrEqual(t, tile.GridX, -1)
		assert.LessOrEqual(t, tile.GridY, 1)
		assert.GreaterOrEqual(t, tile.GridY, -1)
	}
}

func TestTilesAroundNegativePositionUsesFloor(t *testing.T) {
	m := New(16)
	m.Add(Tile{Type: Grass, GridX: -2, GridY: 0})

	// -1px lies in cell -1, so cell -2 is a neighbour.
	assert.Len(t, m.TilesAround(-1, 0), 1)
	// 1px lies in cell 0, two cells away.
	assert.Empty(t, m.TilesAround(1, 0))
}

func TestTilesAroundKeepsInsertionOrderWithinCell(t *testing.T) {
	m := New(16)
	m.Add(Tile{Type: Decor, Variant: 2, GridX: 0, GridY: 0, Layer: 3})
	m.Add(Tile{Type: Grass, Variant: 1, GridX: 0, GridY: 0, Layer: 0})

	tiles := m.TilesAround(0, 0)
	require.Len(t, tiles, 2)
	assert.Equal(t, Decor, tiles[0].Type)
	assert.Equal(t, Grass, tiles[1].Type)
}

func TestPhysicsRectsAroundOnlySolid(t *testing.T) {
	m := New(16)
	groundRow(m, 2, 0, 2)
	m.Add(Tile{Type: Decor, GridX: 1, GridY: 1})
	m.Add(Tile{Type: Ladder, GridX: 0, GridY: 1})

	rects := m.PhysicsRectsAround(16, 16)
	require.Len(t, rects, 3)
	assert.Contains(t, rects, gamemath.NewRect(16, 32, 16, 16))

	ladders := m.LaddersAround(16, 16)
	require.Len(t, ladders, 1)
	assert.Equal(t, gamemath.NewRect(0, 16, 16, 16), ladders[0])
}

func TestExtractRemovesAndPrunesCells(t *testing.T) {
	m := New(16)
	m.Add(Tile{Type: Tree, Variant: 0, GridX: 3, GridY: 4})
	m.Add(Tile{Type: Tree, Variant: 1, GridX: 5, GridY: 4})
	m.Add(Tile{Type: Decor, Variant: 0, GridX: 5, GridY: 4})
	m.AddOffGrid(PixelTile{Type: Tree, Variant: 0, X: 7, Y: 9})

	matches := m.Extract([]TypeVariant{{Tree, 0}, {Tree, 1}}, false)
	require.Len(t, matches, 3)
	assert.Equal(t, PixelTile{Type: Tree, Variant: 0, X: 7, Y: 9}, matches[0])
	assert.Equal(t, PixelTile{Type: Tree, Variant: 0, X: 48, Y: 64}, matches[1])
	assert.Equal(t, PixelTile{Type: Tree, Variant: 1, X: 80, Y: 64}, matches[2])

	assert.False(t, m.HasCell(3, 4), "emptied cell must be pruned")
	assert.True(t, m.HasCell(5, 4))
	assert.Equal(t, 1, m.CellCount())
	assert.Empty(t, m.OffGrid())

	for _, tile := range m.TilesAround(3*16, 4*16) {
		assert.NotEqual(t, Tree, tile.Type)
	}
}

func TestExtractKeepLeavesGridIntact(t *testing.T) {
	m := New(16)
	m.Add(Tile{Type: Ladder, GridX: 1, GridY: 1})

	matches := m.Extract([]TypeVariant{{Ladder, 0}}, true)
	require.Len(t, matches, 1)
	assert.Equal(t, 16.0, matches[0].X)
	assert.True(t, m.HasCell(1, 1))
	assert.Len(t, m.TilesAt(1, 1), 1)
}

func TestRenderSortsByLayerAndCullsViewport(t *testing.T) {
	m := New(16)
	m.Add(Tile{Type: Decor, Variant: 1, GridX: 0, GridY: 0, Layer: 2})
	m.Add(Tile{Type: Grass, Variant: 0, GridX: 0, GridY: 0, Layer: 0})
	m.Add(Tile{Type: Decor, Variant: 2, GridX: 0, GridY: 0, Layer: 0})
	m.Add(Tile{Type: Grass, Variant: 0, GridX: 100, GridY: 100})
	m.AddOffGrid(PixelTile{Type: Tree, X: 5000, Y: 5000})

	type call struct {
		kind    string
		variant int
		x, y    float64
	}
	var calls []call
	m.Render(0, 0, 64, 64, func(kind string, variant int, x, y float64) {
		calls = append(calls, call{kind, variant, x, y})
	})

	require.Len(t, calls, 4)
	assert.Equal(t, call{Tree, 0, 5000, 5000}, calls[0], "off-grid tiles are always drawn")
	assert.Equal(t, call{Grass, 0, 0, 0}, calls[1])
	assert.Equal(t, call{Decor, 2, 0, 0}, calls[2])
	assert.Equal(t, call{Decor, 1, 0, 0}, calls[3])
}

func TestRenderAppliesOffset(t *testing.T) {
	m := New(16)
	m.Add(Tile{Type: Grass, GridX: 3, GridY: 2})

	var gotX, gotY float64
	n := 0
	m.Render(40, 20, 32, 32, func(_ string, _ int, x, y float64) {
		gotX, gotY = x, y
		n++
	})
	require.Equal(t, 1, n)
	assert.Equal(t, 8.0, gotX)
	assert.Equal(t, 12.0, gotY)
}

func TestBounds(t *testing.T) {
	m := New(16)
	assert.Equal(t, gamemath.Rect{}, m.Bounds())

	groundRow(m, 5, 2, 9)
	m.Add(Tile{Type: Decor, GridX: 4, GridY: 1})
	assert.Equal(t, gamemath.NewRect(32, 16, 128, 80), m.Bounds())
}
