// Package leveldata parses TMX level files into a tile grid and spawn lists.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "github.com/automoto/ninja-platformer/tilemap"

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Level is a parsed level definition. It is never mutated after loading, so a
// reset can rebuild per-level state from it by loading again.
type Level struct {
	Path     string
	Width    int // in tiles
	Height   int
	TileSize int

	TileMap *tilemap.TileMap

	PlayerSpawn    Point // (0,0) when the map declares none
	HasPlayerSpawn bool
	EnemySpawns    []Point
	BossSpawns     []Point
}

// PixelWidth returns the map width in pixels.
func (l *Level) PixelWidth() float64 {
	return float64(l.Width * l.TileSize)
}

// PixelHeight returns the map height in pixels.
func (l *Level) PixelHeight() float64 {
	return float64(l.Height * l.TileSize)
}

// Layer names recognised in TMX files.
const (
	LayerGround = "Ground"
	LayerDecor  = "Decor"
	LayerTrees  = "Trees"
	LayerLadder = "Ladder"
	LayerPlayer = "Player"
	LayerEnemy  = "Enemy"
	LayerBoss   = "Boss"
)

// tileKind maps a global tile id on a named layer to a tile type and variant.
type tileKind struct {
	Type    string
	Variant int
}

// layerKinds lists the tile ids understood on each tile layer. A nil map
// accepts any id as variant 0.
var layerKinds = map[string]map[uint32]tileKind{
	LayerGround: {
		1: {tilemap.Grass, 0},
		2: {tilemap.Grass, 2},
		3: {tilemap.Grass, 1},
		4: {tilemap.Grass, 3},
	},
	LayerDecor: {
		5: {tilemap.Decor, 0},
		6: {tilemap.Decor, 1},
		7: {tilemap.Decor, 2},
		8: {tilemap.Decor, 3},
	},
	LayerTrees: {
		9:  {tilemap.Tree, 0},
		10: {tilemap.Tree, 1},
		11: {tilemap.Tree, 2},
		12: {tilemap.Tree, 3},
	},
	LayerLadder: nil,
}
