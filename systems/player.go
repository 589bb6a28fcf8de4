package systems

import (
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns input into intent, runs the kernel and picks the
// player's action for the frame.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := firstPlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Dead {
		return
	}

	obj := components.Object.Get(entry)
	phys := components.Physics.Get(entry)
	anim := components.Animation.Get(entry)
	input := getOrCreateInput(ecs)

	intentX := 0.0
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		intentX += cfg.Player.RunSpeed
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		intentX -= cfg.Player.RunSpeed
	}
	player.IntentX = intentX

	up := GetAction(input, cfg.ActionMoveUp)
	down := GetAction(input, cfg.ActionMoveDown)
	if anim.Action == cfg.Climb {
		switch {
		case up.Pressed:
			phys.VelocityY = -cfg.Physics.ClimbSpeed
		case down.Pressed:
			phys.VelocityY = cfg.Physics.ClimbSpeed
		default:
			phys.VelocityY = 0
		}
	} else if up.JustPressed && anim.Action != cfg.Jump {
		phys.VelocityY = -cfg.Physics.JumpSpeed
	}

	if player.ShurikenCooldown > 0 {
		player.ShurikenCooldown--
	}
	if GetAction(input, cfg.ActionThrow).JustPressed && player.ShurikenCooldown == 0 {
		throwShuriken(ecs, obj, anim)
		player.ShurikenCooldown = cfg.Player.ShurikenCooldown
	}

	tiles := levelTiles(ecs)
	MoveBody(obj, phys, anim, solidsOf(tiles), intentX, 0)
	phys.VelocityX, _ = gamemath.DecayKnockback(phys.VelocityX, 0)

	if fellOut(ecs, obj) {
		KillPlayer(ecs, entry)
		return
	}

	var ladders LadderQuery
	if tiles != nil {
		ladders = tiles
	}
	selectPlayerAction(entry, ladders)
}

// LadderQuery returns the ladder rectangles near a pixel position.
type LadderQuery interface {
	LaddersAround(x, y float64) []gamemath.Rect
}

// selectPlayerAction applies the ladder check and the air-time rules.
func selectPlayerAction(entry *donburi.Entry, ladders LadderQuery) {
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	phys := components.Physics.Get(entry)
	anim := components.Animation.Get(entry)

	if ladders != nil {
		box := obj.Rect()
		cx, cy := box.Center()
		for _, ladder := range ladders.LaddersAround(cx, cy) {
			if !box.Overlaps(ladder) {
				continue
			}
			if anim.Action != cfg.Climb {
				phys.VelocityY = 0
				anim.SetAction(assets.Animations, cfg.Climb)
			}
			return
		}
	}

	player.AirTime++
	if phys.Collisions.Down {
		player.AirTime = 0
	}

	switch {
	case player.AirTime > cfg.Player.JumpAirTime:
		anim.SetAction(assets.Animations, cfg.Jump)
	case player.IntentX != 0:
		anim.SetAction(assets.Animations, cfg.Run)
	default:
		anim.SetAction(assets.Animations, cfg.Idle)
	}
}

func throwShuriken(ecs *ecs.ECS, obj *components.ObjectData, anim *components.AnimationData) {
	dir := 1.0
	if anim.Flip {
		dir = -1
	}
	cx, cy := obj.Rect().Center()
	factory.CreateShuriken(ecs, cx, cy, dir)
	PlaySFX(ecs, cfg.SoundThrow)
}

// fellOut reports whether a box has dropped below the bottom of the map.
func fellOut(ecs *ecs.ECS, obj *components.ObjectData) bool {
	level, ok := currentLevel(ecs)
	if !ok {
		return false
	}
	return obj.Y > level.Level.PixelHeight()+cfg.Physics.FallMargin
}

// DamagePlayer applies a hit: health drops, floored at zero, and the
// knockback replaces the player's velocity.
func DamagePlayer(ecs *ecs.ECS, entry *donburi.Entry, amount int, knockbackX, knockbackY float64) {
	player := components.Player.Get(entry)
	if player.Dead {
		return
	}

	health := components.Health.Get(entry)
	health.Current = max(health.Current-amount, 0)

	phys := components.Physics.Get(entry)
	phys.VelocityX = knockbackX
	phys.VelocityY = knockbackY

	PlaySFX(ecs, cfg.SoundDamage)

	if health.Current == 0 {
		KillPlayer(ecs, entry)
	}
}

// KillPlayer marks the player dead and starts the iris. The level is rebuilt
// once the iris has closed.
func KillPlayer(ecs *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.Dead {
		return
	}
	player.Dead = true
	PlaySFX(ecs, cfg.SoundDeath)
	StartIris(ecs)
	log.Debug().Msg("player died")
}
