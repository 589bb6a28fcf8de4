package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGravityClampsAtTerminalVelocity(t *testing.T) {
	vy := 0.0
	for n := 1; n <= 80; n++ {
		vy = ApplyGravity(vy)
		assert.InDelta(t, math.Min(TerminalVelocity, float64(n)*Gravity), vy, 1e-9, "frame %d", n)
	}
	assert.Equal(t, TerminalVelocity, vy)
}

func TestDecayKnockbackIsGeometricThenZero(t *testing.T) {
	x, y := 5.0, -2.0
	m := math.Hypot(x, y)
	for k := 1; k < 200; k++ {
		x, y = DecayKnockback(x, y)
		expected := m * math.Pow(KnockbackDecay, float64(k))
		if expected < KnockbackCutoff {
			assert.Zero(t, x, "frame %d", k)
			assert.Zero(t, y, "frame %d", k)
			continue
		}
		assert.InDelta(t, expected, math.Hypot(x, y), 1e-9, "frame %d", k)
	}
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestKnockbackFor(t *testing.T) {
	x, y := KnockbackFor(1, 5, -2)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, -2.0, y)

	x, y = KnockbackFor(-1, 5, -2)
	assert.Equal(t, -5.0, x)
	assert.Equal(t, -2.0, y)
}

func TestRectOverlapsExcludesTouchingEdges(t *testing.T) {
	a := NewRect(0, 0, 16, 16)

	assert.True(t, a.Overlaps(NewRect(15, 15, 4, 4)))
	assert.False(t, a.Overlaps(NewRect(16, 0, 16, 16)))
	assert.False(t, a.Overlaps(NewRect(0, 16, 16, 16)))
	assert.False(t, a.Overlaps(NewRect(-16, 0, 16, 16)))
}
