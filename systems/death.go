package systems

import (
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// StartIris begins the death transition unless one is already running.
func StartIris(ecs *ecs.ECS) {
	if _, ok := components.Iris.First(ecs.World); ok {
		return
	}
	factory.CreateIris(ecs)
}

// UpdateIris shrinks the iris by one step of its tween.
func UpdateIris(ecs *ecs.ECS) {
	entry, ok := components.Iris.First(ecs.World)
	if !ok {
		return
	}
	iris := components.Iris.Get(entry)
	if iris.Done {
		return
	}

	radius, finished := iris.Tween.Update(1)
	iris.Radius = float64(radius)
	if finished || iris.Radius <= 0 {
		iris.Radius = 0
		iris.Done = true
	}
}

// IrisClosed reports whether the death transition has finished and the
// level should be rebuilt.
func IrisClosed(ecs *ecs.ECS) bool {
	entry, ok := components.Iris.First(ecs.World)
	if !ok {
		return false
	}
	return components.Iris.Get(entry).Done
}

// DrawIris blacks out everything outside a circle around the player.
func DrawIris(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Iris.First(ecs.World)
	if !ok {
		return
	}
	iris := components.Iris.Get(entry)

	shader, err := assets.Shader(assets.ShaderIris)
	if err != nil {
		log.Error().Err(err).Msg("iris shader")
		return
	}

	scrollX, scrollY := cameraScroll(ecs)
	cx, cy := float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2
	if playerEntry, ok := firstPlayer(ecs); ok {
		px, py := components.Object.Get(playerEntry).Rect().Center()
		cx, cy = px-scrollX, py-scrollY
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	opts := &ebiten.DrawRectShaderOptions{}
	opts.Uniforms = map[string]interface{}{
		"Center": []float32{float32(cx), float32(cy)},
		"Radius": float32(iris.Radius),
	}
	screen.DrawRectShader(w, h, shader, opts)
}
