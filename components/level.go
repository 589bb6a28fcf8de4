package components

import (
	"github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Def   config.LevelDef
	Index int
	Level *leveldata.Level

	// Precomputed once per load from extracted tile markers
	LeafSpawners []gamemath.Rect
	Ladders      []gamemath.Rect
}

var Level = donburi.NewComponentType[LevelData]()
