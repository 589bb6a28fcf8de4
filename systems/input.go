package systems

import (
	"slices"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var pads []ebiten.GamepadID

// UpdateInput samples keyboard, mouse and gamepads into the Input component.
// It runs first so every later system sees the same frame of input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	pads = ebiten.AppendGamepadIDs(pads[:0])
	pads = slices.DeleteFunc(pads, func(id ebiten.GamepadID) bool {
		return !ebiten.IsStandardGamepadLayoutAvailable(id)
	})

	for _, b := range cfg.Bindings {
		if bindingHeld(b) {
			input.Current[b.Action] = true
		}
	}
}

func bindingHeld(b cfg.Binding) bool {
	if slices.ContainsFunc(b.Keys, ebiten.IsKeyPressed) {
		return true
	}
	if slices.ContainsFunc(b.Mouse, ebiten.IsMouseButtonPressed) {
		return true
	}
	for _, id := range pads {
		for _, btn := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
		if stickHeld(id, b.Stick) {
			return true
		}
	}
	return false
}

func stickHeld(id ebiten.GamepadID, dir cfg.StickDir) bool {
	h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	switch dir {
	case cfg.StickLeft:
		return h < -cfg.StickDeadzone
	case cfg.StickRight:
		return h > cfg.StickDeadzone
	case cfg.StickUp:
		return v < -cfg.StickDeadzone
	case cfg.StickDown:
		return v > cfg.StickDeadzone
	}
	return false
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction compares this frame against the last to report edges.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	now, before := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      now,
		JustPressed:  now && !before,
		JustReleased: before && !now,
	}
}

// SetAction overrides an action for the current frame. Tests drive the
// player through it.
func SetAction(ecs *ecs.ECS, id cfg.ActionID, pressed bool) {
	getOrCreateInput(ecs).Current[id] = pressed
}
