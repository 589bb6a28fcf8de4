package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopingAnimationWraps(t *testing.T) {
	a := NewAnimation(3, 2, true)
	var seen []int
	for i := 0; i < 7; i++ {
		seen = append(seen, a.Frame())
		a.Update()
	}
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 0}, seen)
	assert.False(t, a.Done)
}

func TestNonLoopingAnimationFinishes(t *testing.T) {
	a := NewAnimation(2, 3, false)
	for i := 0; i < 4; i++ {
		a.Update()
		assert.False(t, a.Done, "tick %d", i)
	}
	a.Update()
	assert.True(t, a.Done)
	assert.Equal(t, 1, a.Frame())

	a.Update()
	assert.True(t, a.Done)
	assert.Equal(t, 5, a.Tick())
}

func TestCopyIsIndependent(t *testing.T) {
	template := NewAnimation(4, 1, true)
	a := template.Copy()
	a.Update()
	a.Reverse()

	assert.Equal(t, 0, template.Tick())
	assert.Equal(t, []int{0, 1, 2, 3}, template.Frames)
	assert.Equal(t, []int{3, 2, 1, 0}, a.Frames)
	assert.Equal(t, 2, a.Frame())
}

func TestRegistryNewPanicsOnUnknownKey(t *testing.T) {
	r := NewRegistry()
	r.Register(Key("player", "idle"), NewAnimation(2, 10, true))

	require.True(t, r.Has("player/idle"))
	assert.NotSame(t, r.New("player/idle"), r.New("player/idle"))
	assert.Panics(t, func() { r.New("player/fly") })
	assert.Equal(t, []string{"player/idle"}, r.Keys())
}
