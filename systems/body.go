package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
)

// SolidQuery returns the solid tile rectangles near a pixel position.
// *tilemap.TileMap satisfies it.
type SolidQuery interface {
	PhysicsRectsAround(x, y float64) []gamemath.Rect
}

// MoveBody runs one frame of the shared actor kernel: integrate intent plus
// velocity, resolve against solid tiles one axis at a time, update facing,
// apply gravity and advance the animation.
//
// Tiles are queried around the centre of the box so that the 3x3 window
// covers actors up to two tiles tall.
func MoveBody(obj *components.ObjectData, phys *components.PhysicsData, anim *components.AnimationData, solids SolidQuery, intentX, intentY float64) {
	phys.Collisions = components.Collisions{}

	moveX := intentX + phys.VelocityX
	moveY := intentY + phys.VelocityY

	obj.X += moveX
	if solids != nil {
		for _, r := range solids.PhysicsRectsAround(obj.X+obj.W/2, obj.Y+obj.H/2) {
			box := gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
			if !box.Overlaps(r) {
				continue
			}
			if moveX > 0 {
				obj.X = r.X - obj.W
				phys.Collisions.Right = true
			}
			if moveX < 0 {
				obj.X = r.Right()
				phys.Collisions.Left = true
			}
		}
	}

	obj.Y += moveY
	if solids != nil {
		for _, r := range solids.PhysicsRectsAround(obj.X+obj.W/2, obj.Y+obj.H/2) {
			box := gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
			if box.Overlaps(r) {
				if moveY > 0 {
					obj.Y = r.Y - obj.H
					phys.Collisions.Down = true
				}
				if moveY < 0 {
					obj.Y = r.Bottom()
					phys.Collisions.Up = true
				}
				continue
			}
			// Standing flush on a tile still counts as grounded.
			if moveY >= 0 && restsOn(box, r) {
				phys.Collisions.Down = true
			}
		}
	}

	if anim != nil {
		if intentX > 0 {
			anim.Flip = false
		}
		if intentX < 0 {
			anim.Flip = true
		}
	}

	if anim == nil || anim.Action != cfg.Climb {
		phys.VelocityY = gamemath.ApplyGravity(phys.VelocityY)
	}
	if phys.Collisions.Down || phys.Collisions.Up {
		phys.VelocityY = 0
	}

	if anim != nil && anim.Current != nil {
		anim.Current.Update()
	}

	obj.Update()
}

// restsOn reports whether box sits exactly on top of r with some horizontal
// overlap.
func restsOn(box, r gamemath.Rect) bool {
	return box.Bottom() == r.Y && box.X < r.Right() && r.X < box.Right()
}
