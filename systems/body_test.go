package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/solarlune/resolv"
)

func newBody(x, y, w, h float64) (*components.ObjectData, *components.PhysicsData) {
	return &components.ObjectData{Object: resolv.NewObject(x, y, w, h)}, &components.PhysicsData{}
}

// fixedSolids returns the same rectangles for every query.
type fixedSolids []gamemath.Rect

func (s fixedSolids) PhysicsRectsAround(float64, float64) []gamemath.Rect { return s }

func TestMoveBodyGravityWithoutTiles(t *testing.T) {
	obj, phys := newBody(0, 0, 6, 16)

	for i := 0; i < 200; i++ {
		before := phys.VelocityY
		MoveBody(obj, phys, nil, nil, 0, 0)
		assert.InDelta(t, min(cfg.Physics.TerminalVelocity, before+cfg.Physics.Gravity), phys.VelocityY, 1e-9)
		assert.LessOrEqual(t, phys.VelocityY, cfg.Physics.TerminalVelocity)
	}
	assert.Equal(t, cfg.Physics.TerminalVelocity, phys.VelocityY)
}

func TestMoveBodyLandsFlush(t *testing.T) {
	m := groundMap(1, 0, 2)
	obj, phys := newBody(5, -1, 6, 16)
	phys.VelocityY = 2

	MoveBody(obj, phys, nil, m, 0, 0)

	assert.Equal(t, 0.0, obj.Y)
	assert.True(t, phys.Collisions.Down)
	assert.Equal(t, 0.0, phys.VelocityY)
}

func TestMoveBodyHitsCeilingFlush(t *testing.T) {
	m := groundMap(0, 0, 2)
	obj, phys := newBody(5, 17, 6, 16)
	phys.VelocityY = -3

	MoveBody(obj, phys, nil, m, 0, 0)

	assert.Equal(t, 16.0, obj.Y)
	assert.True(t, phys.Collisions.Up)
	assert.Equal(t, 0.0, phys.VelocityY)
}

func TestMoveBodyStopsAtWalls(t *testing.T) {
	wall := fixedSolids{gamemath.NewRect(32, 0, 16, 16)}

	obj, phys := newBody(25, 0, 6, 16)
	MoveBody(obj, phys, nil, wall, 2, 0)
	assert.Equal(t, 26.0, obj.X)
	assert.True(t, phys.Collisions.Right)
	assert.False(t, phys.Collisions.Left)

	obj, phys = newBody(49, 0, 6, 16)
	MoveBody(obj, phys, nil, wall, -2, 0)
	assert.Equal(t, 48.0, obj.X)
	assert.True(t, phys.Collisions.Left)
	assert.False(t, phys.Collisions.Right)
}

func TestMoveBodyClearsFlagsEachFrame(t *testing.T) {
	wall := fixedSolids{gamemath.NewRect(32, 0, 16, 16)}
	obj, phys := newBody(25, 0, 6, 16)

	MoveBody(obj, phys, nil, wall, 2, 0)
	require.True(t, phys.Collisions.Right)

	MoveBody(obj, phys, nil, nil, -1, 0)
	assert.False(t, phys.Collisions.Right)
}

func TestMoveBodyRestingStaysGrounded(t *testing.T) {
	m := groundMap(1, 0, 2)
	obj, phys := newBody(5, 0, 6, 16)

	for i := 0; i < 10; i++ {
		MoveBody(obj, phys, nil, m, 0, 0)
		assert.True(t, phys.Collisions.Down)
		assert.Equal(t, 0.0, phys.VelocityY)
		assert.Equal(t, 0.0, obj.Y)
	}
}

func TestMoveBodyFlipFollowsIntent(t *testing.T) {
	obj, phys := newBody(0, 0, 6, 16)
	anim := &components.AnimationData{EntityType: cfg.TypePlayer}

	MoveBody(obj, phys, anim, nil, -1, 0)
	assert.True(t, anim.Flip)

	MoveBody(obj, phys, anim, nil, 0, 0)
	assert.True(t, anim.Flip, "zero intent keeps facing")

	MoveBody(obj, phys, anim, nil, 1, 0)
	assert.False(t, anim.Flip)
}

func TestMoveBodyClimbSkipsGravity(t *testing.T) {
	obj, phys := newBody(0, 0, 6, 16)
	anim := &components.AnimationData{EntityType: cfg.TypePlayer, Action: cfg.Climb}

	MoveBody(obj, phys, anim, nil, 0, 0)
	assert.Equal(t, 0.0, phys.VelocityY)
	assert.Equal(t, 0.0, obj.Y)
}

func TestMoveBodyTallActorFindsFloor(t *testing.T) {
	m := tilemap.New(16)
	m.Add(tilemap.Tile{Type: tilemap.Grass, GridX: 0, GridY: 2})
	obj, phys := newBody(1, 0, 14, 31)
	phys.VelocityY = 2

	MoveBody(obj, phys, nil, m, 0, 0)

	assert.Equal(t, 1.0, obj.Y)
	assert.True(t, phys.Collisions.Down)
}
