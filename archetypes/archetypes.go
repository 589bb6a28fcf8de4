package archetypes

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
	)
	// Boss carries the Enemy tag too so it counts toward the enemy roster.
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
	)
	Shuriken = newArchetype(
		tags.Projectile,
		tags.Shuriken,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Animation,
	)
	RedShuriken = newArchetype(
		tags.Projectile,
		tags.RedShuriken,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Animation,
	)
	Leaf = newArchetype(
		tags.Leaf,
		components.Particle,
	)
	Clouds = newArchetype(
		components.Clouds,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Iris = newArchetype(
		components.Iris,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
