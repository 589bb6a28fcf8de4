// Package tilemap holds the sparse tile grid of a level and the neighbour
// queries used for collision resolution.
package tilemap

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/ninja-platformer/shared/gamemath"
)

// Tile types found in level data.
const (
	Grass  = "grass"
	Decor  = "decor"
	Tree   = "tree"
	Ladder = "ladder"
)

// DefaultTileSize is the edge length of a grid cell in pixels.
const DefaultTileSize = 16

// neighborOffsets is the 3x3 window around a cell, the cell itself included.
var neighborOffsets = [9][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// solidTypes lists the tile types that take part in collision.
var solidTypes = map[string]bool{
	Grass: true,
}

// IsSolid reports whether tiles of the given type block movement.
func IsSolid(tileType string) bool {
	return solidTypes[tileType]
}

// Tile is a tile snapped to the grid.
type Tile struct {
	Type    string
	Variant int
	GridX   int
	GridY   int
	Layer   int
}

// PixelTile is a tile positioned in pixel space: either an off-grid decal or
// a grid tile handed out by Extract.
type PixelTile struct {
	Type    string
	Variant int
	X, Y    float64
	Layer   int
}

// TypeVariant identifies a tile kind for Extract.
type TypeVariant struct {
	Type    string
	Variant int
}

// TileMap is a sparse grid keyed by "x;y". A key exists only while its cell
// holds at least one tile.
type TileMap struct {
	TileSize int

	grid    map[string][]Tile
	offGrid []PixelTile
}

func New(tileSize int) *TileMap {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &TileMap{
		TileSize: tileSize,
		grid:     make(map[string][]Tile),
	}
}

// Key formats a grid coordinate as a cell key.
func Key(x, y int) string {
	return strconv.Itoa(x) + ";" + strconv.Itoa(y)
}

func parseKey(key string) (int, int) {
	xs, ys, _ := strings.Cut(key, ";")
	x, _ := strconv.Atoi(xs)
	y, _ := strconv.Atoi(ys)
	return x, y
}

// Add places a tile in its grid cell after any tiles already there.
func (m *TileMap) Add(t Tile) {
	key := Key(t.GridX, t.GridY)
	m.grid[key] = append(m.grid[key], t)
}

// AddOffGrid stores a pixel-positioned tile.
func (m *TileMap) AddOffGrid(t PixelTile) {
	m.offGrid = append(m.offGrid, t)
}

// TilesAt returns the tiles of one cell in insertion order.
func (m *TileMap) TilesAt(x, y int) []Tile {
	return m.grid[Key(x, y)]
}

// HasCell reports whether a cell key is present.
func (m *TileMap) HasCell(x, y int) bool {
	_, ok := m.grid[Key(x, y)]
	return ok
}

// CellCount returns the number of occupied cells.
func (m *TileMap) CellCount() int {
	return len(m.grid)
}

// OffGrid returns the pixel-positioned tiles.
func (m *TileMap) OffGrid() []PixelTile {
	return m.offGrid
}

// CellOf converts a pixel position to the grid cell containing it.
func (m *TileMap) CellOf(px, py float64) (int, int) {
	ts := float64(m.TileSize)
	return int(math.Floor(px / ts)), int(math.Floor(py / ts))
}

// TilesAround returns the tiles in the 3x3 block of cells centred on the cell
// containing (px, py).
func (m *TileMap) TilesAround(px, py float64) []Tile {
	cx, cy := m.CellOf(px, py)
	var tiles []Tile
	for _, off := range neighborOffsets {
		if cell, ok := m.grid[Key(cx+off[0], cy+off[1])]; ok {
			tiles = append(tiles, cell...)
		}
	}
	return tiles
}

// PhysicsRectsAround returns one tile-sized box per solid tile near (px, py).
func (m *TileMap) PhysicsRectsAround(px, py float64) []gamemath.Rect {
	return m.rectsAround(px, py, IsSolid)
}

// LaddersAround returns one tile-sized box per ladder tile near (px, py).
func (m *TileMap) LaddersAround(px, py float64) []gamemath.Rect {
	return m.rectsAround(px, py, func(t string) bool { return t == Ladder })
}

func (m *TileMap) rectsAround(px, py float64, keep func(string) bool) []gamemath.Rect {
	ts := float64(m.TileSize)
	var rects []gamemath.Rect
	for _, t := range m.TilesAround(px, py) {
		if keep(t.Type) {
			rects = append(rects, gamemath.NewRect(float64(t.GridX)*ts, float64(t.GridY)*ts, ts, ts))
		}
	}
	return rects
}

// Extract returns every tile matching one of pairs, in pixel space. Unless
// keep is set the matches are removed from the map and emptied cells are
// dropped.
func (m *TileMap) Extract(pairs []TypeVariant, keep bool) []PixelTile {
	wanted := make(map[TypeVariant]bool, len(pairs))
	for _, p := range pairs {
		wanted[p] = true
	}

	var matches []PixelTile

	remaining := m.offGrid[:0:0]
	for _, t := range m.offGrid {
		if wanted[TypeVariant{t.Type, t.Variant}] {
			matches = append(matches, t)
			if !keep {
				continue
			}
		}
		remaining = append(remaining, t)
	}
	m.offGrid = remaining

	ts := float64(m.TileSize)
	for _, key := range m.sortedKeys() {
		cell := m.grid[key]
		kept := cell[:0:0]
		for _, t := range cell {
			if wanted[TypeVariant{t.Type, t.Variant}] {
				matches = append(matches, PixelTile{
					Type:    t.Type,
					Variant: t.Variant,
					X:       float64(t.GridX) * ts,
					Y:       float64(t.GridY) * ts,
					Layer:   t.Layer,
				})
				if !keep {
					continue
				}
			}
			kept = append(kept, t)
		}
		if len(kept) == 0 {
			delete(m.grid, key)
			continue
		}
		m.grid[key] = kept
	}

	return matches
}

// sortedKeys orders cell keys row by row so Extract output is stable.
func (m *TileMap) sortedKeys() []string {
	keys := make([]string, 0, len(m.grid))
	for k := range m.grid {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		xi, yi := parseKey(keys[i])
		xj, yj := parseKey(keys[j])
		if yi != yj {
			return yi < yj
		}
		return xi < xj
	})
	return keys
}

// Bounds returns the pixel extent covered by grid tiles.
func (m *TileMap) Bounds() gamemath.Rect {
	if len(m.grid) == 0 {
		return gamemath.Rect{}
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for key := range m.grid {
		x, y := parseKey(key)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	ts := float64(m.TileSize)
	return gamemath.NewRect(float64(minX)*ts, float64(minY)*ts,
		float64(maxX-minX+1)*ts, float64(maxY-minY+1)*ts)
}
