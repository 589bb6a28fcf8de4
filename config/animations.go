package config

// AnimationDef describes one sprite strip: how many frames it has, how many
// ticks each frame lasts and whether it loops.
type AnimationDef struct {
	Frames      int
	ImgDuration int
	Loop        bool
	FrameWidth  int
	FrameHeight int
}

// Animations maps registry keys ("<type>/<action>", "projectiles/<kind>",
// "particle/<kind>") to their strip definitions.
var Animations = map[string]AnimationDef{
	"player/idle":  {Frames: 4, ImgDuration: 10, Loop: true, FrameWidth: 16, FrameHeight: 16},
	"player/run":   {Frames: 4, ImgDuration: 8, Loop: true, FrameWidth: 16, FrameHeight: 16},
	"player/jump":  {Frames: 1, ImgDuration: 5, Loop: true, FrameWidth: 16, FrameHeight: 16},
	"player/climb": {Frames: 2, ImgDuration: 10, Loop: true, FrameWidth: 16, FrameHeight: 16},

	"enemy/idle": {Frames: 4, ImgDuration: 10, Loop: true, FrameWidth: 16, FrameHeight: 16},
	"enemy/run":  {Frames: 4, ImgDuration: 8, Loop: true, FrameWidth: 16, FrameHeight: 16},

	"boss/idle": {Frames: 4, ImgDuration: 10, Loop: true, FrameWidth: 16, FrameHeight: 32},
	"boss/run":  {Frames: 4, ImgDuration: 6, Loop: true, FrameWidth: 16, FrameHeight: 32},

	"projectiles/shuriken":     {Frames: 4, ImgDuration: 12, Loop: false, FrameWidth: 8, FrameHeight: 8},
	"projectiles/red_shuriken": {Frames: 4, ImgDuration: 12, Loop: false, FrameWidth: 8, FrameHeight: 8},

	"particle/leaf": {Frames: 4, ImgDuration: 20, Loop: false, FrameWidth: 8, FrameHeight: 8},
}

// TileVariants is the number of variants in each tile strip.
var TileVariants = map[string]int{
	"grass":  4,
	"decor":  4,
	"tree":   4,
	"ladder": 1,
}
