package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/ninja-platformer/assets"
	cfg "github.com/automoto/ninja-platformer/config"
)

func TestSetActionKeepsRunningPlayhead(t *testing.T) {
	anim := &AnimationData{EntityType: cfg.TypePlayer}
	anim.SetAction(assets.Animations, cfg.Run)
	running := anim.Current

	for i := 0; i < 3; i++ {
		anim.Current.Update()
	}
	anim.SetAction(assets.Animations, cfg.Run)

	assert.Same(t, running, anim.Current)
	assert.Equal(t, 3, anim.Current.Tick())
}

func TestSetActionRestartsOnChange(t *testing.T) {
	anim := &AnimationData{EntityType: cfg.TypePlayer}
	anim.SetAction(assets.Animations, cfg.Run)
	anim.Current.Update()

	anim.SetAction(assets.Animations, cfg.Idle)

	assert.Equal(t, cfg.Idle, anim.Action)
	assert.Equal(t, 0, anim.Current.Tick())
	assert.Equal(t, "player/idle", anim.Key())
}

func TestHealthRatio(t *testing.T) {
	assert.Equal(t, 0.5, (&HealthData{Current: 50, Max: 100}).Ratio())
	assert.Equal(t, 0.0, (&HealthData{Current: -5, Max: 100}).Ratio())
	assert.Equal(t, 0.0, (&HealthData{}).Ratio())
}
