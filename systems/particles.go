package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// particleRand drives leaf spawning. Tests replace it for repeatable runs.
var particleRand = rand.New(rand.NewSource(rand.Int63()))

type leafSpawn struct {
	x, y  float64
	frame int
}

// UpdateLeaves spawns leaves from tree spawners and drifts the live ones.
// Leaves die when their animation finishes.
func UpdateLeaves(ecs *ecs.ECS) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}

	var spawns []leafSpawn
	for _, r := range level.LeafSpawners {
		if particleRand.Float64()*cfg.Leaf.SpawnThreshold < r.W*r.H {
			spawns = append(spawns, leafSpawn{
				x:     r.X + particleRand.Float64()*r.W,
				y:     r.Y + particleRand.Float64()*r.H,
				frame: particleRand.Intn(cfg.Leaf.MaxStartFrame + 1),
			})
		}
	}
	for _, s := range spawns {
		factory.CreateLeaf(ecs, s.x, s.y, s.frame)
	}

	var toRemove []*donburi.Entry
	tags.Leaf.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Animation.Done {
			toRemove = append(toRemove, e)
			return
		}
		p.Animation.Update()
		p.X += p.VelocityX + math.Sin(float64(p.Animation.Tick())*cfg.Leaf.SwayRate)*cfg.Leaf.SwayAmplitude
		p.Y += p.VelocityY
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

// DrawLeaves draws the leaves centred on their positions.
func DrawLeaves(ecs *ecs.ECS, screen *ebiten.Image) {
	scrollX, scrollY := cameraScroll(ecs)
	tags.Leaf.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		img := assets.AnimationImage("particle/"+p.Kind, p.Animation)
		b := img.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X-scrollX-float64(b.Dx())/2, p.Y-scrollY-float64(b.Dy())/2)
		screen.DrawImage(img, op)
	})
}

// UpdateClouds drifts the clouds sideways.
func UpdateClouds(ecs *ecs.ECS) {
	entry, ok := components.Clouds.First(ecs.World)
	if !ok {
		return
	}
	clouds := components.Clouds.Get(entry)
	for i := range clouds.Clouds {
		clouds.Clouds[i].X += clouds.Clouds[i].Speed
	}
}

// DrawClouds draws the clouds with depth-scaled parallax, wrapping them
// around the display.
func DrawClouds(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Clouds.First(ecs.World)
	if !ok {
		return
	}
	scrollX, scrollY := cameraScroll(ecs)
	images := assets.CloudImages()
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, c := range components.Clouds.Get(entry).Clouds {
		img := images[c.Variant%len(images)]
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

		x := wrap(c.X-scrollX*c.Depth, w+iw) - iw
		y := wrap(c.Y-scrollY*c.Depth, h+ih) - ih

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(math.Round(x), math.Round(y))
		screen.DrawImage(img, op)
	}
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
