package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical control of the game.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp // jump, or climb on a ladder
	ActionMoveDown
	ActionThrow
	ActionPause
	ActionQuit
	ActionMenuSelect
	ActionCount // array size, keep last
)

// StickDir is a direction of the left analog stick.
type StickDir int

const (
	StickNone StickDir = iota
	StickLeft
	StickRight
	StickUp
	StickDown
)

// Binding lists every physical input that triggers one action.
type Binding struct {
	Action  ActionID
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
	Mouse   []ebiten.MouseButton
	Stick   StickDir
}

// StickDeadzone is how far the stick must travel before it counts.
var StickDeadzone = 0.25

var Bindings []Binding

func init() {
	Bindings = []Binding{
		{
			Action:  ActionMoveLeft,
			Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			Stick:   StickLeft,
		},
		{
			Action:  ActionMoveRight,
			Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			Stick:   StickRight,
		},
		{
			Action: ActionMoveUp,
			Keys:   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			Buttons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
				ebiten.StandardGamepadButtonRightBottom,
			},
			Stick: StickUp,
		},
		{
			Action:  ActionMoveDown,
			Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			Stick:   StickDown,
		},
		{
			Action:  ActionThrow,
			Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		{
			Action:  ActionPause,
			Keys:    []ebiten.Key{ebiten.KeyEscape},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
		{
			Action:  ActionQuit,
			Keys:    []ebiten.Key{ebiten.KeyQ},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
		},
		{
			Action:  ActionMenuSelect,
			Keys:    []ebiten.Key{ebiten.KeyEnter},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			Mouse:   []ebiten.MouseButton{ebiten.MouseButtonLeft},
		},
	}
}
