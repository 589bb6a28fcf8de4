package tilemap

import (
	"math"
	"sort"
)

// DrawFunc draws one tile with its top-left corner at the screen position.
type DrawFunc func(tileType string, variant int, x, y float64)

// Render draws the off-grid tiles and the grid cells visible in a viewW x viewH
// viewport scrolled by (offsetX, offsetY). Tiles sharing a cell are drawn in
// ascending layer order, ties keeping insertion order.
func (m *TileMap) Render(offsetX, offsetY float64, viewW, viewH int, draw DrawFunc) {
	for _, t := range m.offGrid {
		draw(t.Type, t.Variant, t.X-offsetX, t.Y-offsetY)
	}

	ts := float64(m.TileSize)
	x0 := int(math.Floor(offsetX / ts))
	y0 := int(math.Floor(offsetY / ts))
	x1 := int(math.Floor((offsetX+float64(viewW))/ts)) + 1
	y1 := int(math.Floor((offsetY+float64(viewH))/ts)) + 1

	var cell []Tile
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			tiles, ok := m.grid[Key(x, y)]
			if !ok {
				continue
			}
			cell = append(cell[:0], tiles...)
			sort.SliceStable(cell, func(i, j int) bool { return cell[i].Layer < cell[j].Layer })
			for _, t := range cell {
				draw(t.Type, t.Variant, float64(x)*ts-offsetX, float64(y)*ts-offsetY)
			}
		}
	}
}
