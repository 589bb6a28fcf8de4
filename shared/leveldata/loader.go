package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS while editing levels.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Path:     tmxPath,
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileWidth,
		TileMap:  tilemap.New(levelMap.TileWidth),
	}
	ts := float64(levelMap.TileWidth)

	for layerIndex, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := y*levelMap.Width + x
				if idx >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[idx]
				if tile.IsNil() {
					continue
				}

				switch layer.Name {
				case LayerPlayer:
					level.setPlayerSpawn(Point{X: float64(x) * ts, Y: float64(y) * ts})
					continue
				case LayerEnemy:
					level.EnemySpawns = append(level.EnemySpawns, Point{X: float64(x) * ts, Y: float64(y) * ts})
					continue
				case LayerBoss:
					level.BossSpawns = append(level.BossSpawns, Point{X: float64(x) * ts, Y: float64(y) * ts})
					continue
				}

				kinds, known := layerKinds[layer.Name]
				if !known {
					continue
				}
				kind := tileKind{Type: tilemap.Ladder}
				if kinds != nil {
					gid := tile.ID
					if tile.Tileset != nil {
						gid += tile.Tileset.FirstGID
					}
					var ok bool
					if kind, ok = kinds[gid]; !ok {
						continue
					}
				}
				level.TileMap.Add(tilemap.Tile{
					Type:    kind.Type,
					Variant: kind.Variant,
					GridX:   x,
					GridY:   y,
					Layer:   layerIndex,
				})
			}
		}
	}

	// Object layers carry spawns in pixels; decorative objects become off-grid tiles.
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			p := Point{X: o.X, Y: o.Y}
			switch og.Name {
			case LayerPlayer:
				level.setPlayerSpawn(p)
			case LayerEnemy:
				level.EnemySpawns = append(level.EnemySpawns, p)
			case LayerBoss:
				level.BossSpawns = append(level.BossSpawns, p)
			case LayerDecor, LayerTrees:
				kind := o.Properties.GetString("type")
				if kind == "" {
					kind = tilemap.Decor
				}
				level.TileMap.AddOffGrid(tilemap.PixelTile{
					Type:    kind,
					Variant: o.Properties.GetInt("variant"),
					X:       o.X,
					Y:       o.Y,
					Layer:   len(levelMap.Layers),
				})
			}
		}
	}

	return level, nil
}

func (l *Level) setPlayerSpawn(p Point) {
	if l.HasPlayerSpawn {
		return
	}
	l.PlayerSpawn = p
	l.HasPlayerSpawn = true
}
