package gamemath

import "math"

const (
	// Gravity is the downward acceleration added to vertical speed every frame.
	Gravity = 0.1
	// TerminalVelocity caps the falling speed.
	TerminalVelocity = 5.0
	// KnockbackDecay is the per-frame multiplier applied to a knockback vector.
	KnockbackDecay = 0.9
	// KnockbackCutoff is the magnitude below which knockback snaps to zero.
	KnockbackCutoff = 0.1
)

// ApplyGravity advances a vertical speed by one frame of gravity.
func ApplyGravity(speedY float64) float64 {
	return math.Min(TerminalVelocity, speedY+Gravity)
}

// DecayKnockback returns the knockback vector for the next frame.
// Once its length drops below KnockbackCutoff the vector is exactly zero.
func DecayKnockback(x, y float64) (float64, float64) {
	x *= KnockbackDecay
	y *= KnockbackDecay
	if math.Hypot(x, y) < KnockbackCutoff {
		return 0, 0
	}
	return x, y
}

// KnockbackFor mirrors a rightward knockback vector for the given throw
// direction. A negative dirX yields the leftward version.
func KnockbackFor(dirX, kx, ky float64) (float64, float64) {
	if dirX < 0 {
		return -kx, ky
	}
	return kx, ky
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
