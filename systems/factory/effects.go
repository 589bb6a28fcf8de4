package factory

import (
	"math/rand"
	"sort"

	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const leafAnimation = "particle/leaf"

// CreateLeaf spawns a drifting leaf centred on x, y. startFrame skips into the
// animation so leaves from one tree do not fall in step.
func CreateLeaf(ecs *ecs.ECS, x, y float64, startFrame int) *donburi.Entry {
	leaf := archetypes.Leaf.Spawn(ecs)

	anim := assets.Animations.New(leafAnimation)
	anim.Seek(startFrame)

	components.Particle.SetValue(leaf, components.ParticleData{
		Kind:       "leaf",
		X:          x,
		Y:          y,
		VelocityX:  cfg.Leaf.VelocityX,
		VelocityY:  cfg.Leaf.VelocityY,
		StartFrame: startFrame,
		Animation:  anim,
	})
	return leaf
}

// CreateClouds scatters the parallax clouds over the display.
func CreateClouds(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Clouds.Spawn(ecs)

	clouds := make([]components.Cloud, cfg.Cloud.Count)
	for i := range clouds {
		clouds[i] = components.Cloud{
			X:       rng.Float64() * 99999,
			Y:       rng.Float64() * 99999,
			Speed:   cfg.Cloud.MinSpeed + rng.Float64()*(cfg.Cloud.MaxSpeed-cfg.Cloud.MinSpeed),
			Depth:   cfg.Cloud.MinDepth + rng.Float64()*(cfg.Cloud.MaxDepth-cfg.Cloud.MinDepth),
			Variant: rng.Intn(2),
		}
	}
	// Far clouds first
	sort.Slice(clouds, func(i, j int) bool { return clouds[i].Depth < clouds[j].Depth })

	components.Clouds.SetValue(entry, components.CloudsData{Clouds: clouds})
	return entry
}

// CreateIris starts the closing circle shown after the player dies.
func CreateIris(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Iris.Spawn(ecs)

	duration := float32(cfg.Iris.StartRadius / cfg.Iris.Step)
	components.Iris.SetValue(entry, components.IrisData{
		Radius: cfg.Iris.StartRadius,
		Tween:  gween.New(float32(cfg.Iris.StartRadius), 0, duration, ease.Linear),
	})
	return entry
}
