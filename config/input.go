package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionQuit
	ActionToggleDebug
	ActionToggleInvertY
	ActionSensitivityUp
	ActionSensitivityDown
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// AxisSensitivity and AxisGravity are how fast (units/sec) a digital
	// axis moves towards a held direction and back to rest.
	AxisSensitivity float64
	AxisGravity     float64
	// MouseScale converts cursor pixels into look axis units.
	MouseScale float64
	// StickLookScale converts right stick deflection into look axis units.
	StickLookScale float64
	// SensitivityStep is the change applied by the sensitivity keys.
	SensitivityStep float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:  0.25,
		AxisSensitivity: 3,
		AxisGravity:     3,
		MouseScale:      0.1,
		StickLookScale:  0.25,
		SensitivityStep: 50,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleInvertY: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionSensitivityUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd},
			},
			ActionSensitivityDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract},
			},
		},
	}
}
