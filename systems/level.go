package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func firstPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

func currentLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	if level.Level == nil {
		return nil, false
	}
	return level, true
}

// levelTiles returns the tile map of the running level, or nil before a
// level is loaded.
func levelTiles(ecs *ecs.ECS) *tilemap.TileMap {
	level, ok := currentLevel(ecs)
	if !ok {
		return nil
	}
	return level.Level.TileMap
}

// solidsOf wraps the tile map so a missing level yields a nil interface.
func solidsOf(m *tilemap.TileMap) SolidQuery {
	if m == nil {
		return nil
	}
	return m
}

func levelSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// removeEntry drops an actor or projectile from the world and its collision
// space.
func removeEntry(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if space := levelSpace(ecs); space != nil && entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}

// cameraScroll returns the integer-rounded scroll used for drawing.
func cameraScroll(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(entry)
	return math.Round(camera.Position.X), math.Round(camera.Position.Y)
}

// DrawBackground draws the level sky and the parallax clouds.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	if level.Def.Background != "" {
		screen.DrawImage(assets.Background(level.Def.Background), nil)
	}
	DrawClouds(ecs, screen)
}

// DrawLevel draws the visible tiles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tiles := levelTiles(ecs)
	if tiles == nil {
		return
	}
	scrollX, scrollY := cameraScroll(ecs)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	tiles.Render(scrollX, scrollY, w, h, func(tileType string, variant int, x, y float64) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(assets.TileImage(tileType, variant), op)
	})
}
