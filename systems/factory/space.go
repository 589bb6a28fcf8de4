package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broad-phase space holding actors and projectiles.
// Tiles are not added: the tile map answers solid queries directly.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
}
