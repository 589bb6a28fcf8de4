package factory

import (
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
)

// newActorAnimation returns animation state for an actor type starting idle.
func newActorAnimation(entityType string, offsetX, offsetY float64) *components.AnimationData {
	anim := &components.AnimationData{
		EntityType: entityType,
		OffsetX:    offsetX,
		OffsetY:    offsetY,
	}
	anim.SetAction(assets.Animations, cfg.Idle)
	return anim
}
