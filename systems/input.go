package systems

import (
	"github.com/automoto/kidclunk/components"
	cfg "github.com/automoto/kidclunk/config"
	"github.com/automoto/kidclunk/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateCharacter in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := 1.0 / float64(cfg.C.TPS)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	moveX, moveY, lookX, lookY, stickUsed := readSticks(gamepadIDs)
	if stickUsed {
		gamepadUsed = true
	}

	if moveX != 0 || moveY != 0 {
		input.Horizontal, input.Vertical = moveX, moveY
	} else {
		input.Horizontal = gamemath.SmoothAxis(input.Horizontal, digitalAxis(input, cfg.ActionMoveLeft, cfg.ActionMoveRight),
			cfg.Input.AxisSensitivity, cfg.Input.AxisGravity, dt)
		input.Vertical = gamemath.SmoothAxis(input.Vertical, digitalAxis(input, cfg.ActionMoveBack, cfg.ActionMoveForward),
			cfg.Input.AxisSensitivity, cfg.Input.AxisGravity, dt)
	}

	mouseX, mouseY := readCursorDelta(input)
	input.LookX = mouseX*cfg.Input.MouseScale + lookX*cfg.Input.StickLookScale
	input.LookY = mouseY*cfg.Input.MouseScale + lookY*cfg.Input.StickLookScale

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed || mouseX != 0 || mouseY != 0 {
		input.LastInputMethod = components.InputKeyboard
	}
}

// digitalAxis turns a pair of opposing actions into -1, 0 or 1.
func digitalAxis(input *components.InputData, negative, positive cfg.ActionID) float64 {
	var v float64
	if input.Current[negative] {
		v--
	}
	if input.Current[positive] {
		v++
	}
	return v
}

// readCursorDelta returns how far the cursor moved since the last frame, with
// positive Y meaning up. Only a captured cursor produces look input.
func readCursorDelta(input *components.InputData) (dx, dy float64) {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		input.CursorTracked = false
		return 0, 0
	}
	x, y := ebiten.CursorPosition()
	if input.CursorTracked {
		dx = float64(x - input.CursorX)
		dy = float64(input.CursorY - y)
	}
	input.CursorX, input.CursorY = x, y
	input.CursorTracked = true
	return dx, dy
}

// readSticks reads both analog sticks from the first gamepad that has one
// outside the deadzone. Stick Y is flipped so that pushing up is positive.
func readSticks(gamepads []ebiten.GamepadID) (moveX, moveY, lookX, lookY float64, used bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		moveX = gamemath.Deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal), deadzone)
		moveY = -gamemath.Deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical), deadzone)
		lookX = gamemath.Deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal), deadzone)
		lookY = -gamemath.Deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical), deadzone)
		if moveX != 0 || moveY != 0 || lookX != 0 || lookY != 0 {
			return moveX, moveY, lookX, lookY, true
		}
	}
	return 0, 0, 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
