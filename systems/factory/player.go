package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Animation.Set(player, newActorAnimation(cfg.TypePlayer, cfg.Player.SpriteOffsetX, cfg.Player.SpriteOffsetY))

	return player
}
