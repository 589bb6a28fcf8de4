package factory

import (
	"fmt"

	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given type ("enemy" or "boss") with its
// top-left corner at x, y.
func CreateEnemy(ecs *ecs.ECS, typeName string, x, y float64) *donburi.Entry {
	enemyType, ok := cfg.Enemy.Types[typeName]
	if !ok {
		panic(fmt.Sprintf("unknown enemy type %q", typeName))
	}

	var enemy *donburi.Entry
	if typeName == cfg.TypeBoss {
		enemy = archetypes.Boss.Spawn(ecs)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	obj := resolv.NewObject(x, y, enemyType.Width, enemyType.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:       typeName,
		TypeConfig:     &enemyType,
		AttackCooldown: enemyType.AttackCooldown,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Animation.Set(enemy, newActorAnimation(typeName, enemyType.SpriteOffsetX, enemyType.SpriteOffsetY))

	return enemy
}

func CreateBoss(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return CreateEnemy(ecs, cfg.TypeBoss, x, y)
}
