package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Key names a keyboard key the player controller reads
type Key string

const (
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyUp    Key = "ArrowUp"
)

// GamepadJumpButton is the button index that triggers a jump
// (bottom face button on standard layouts)
const GamepadJumpButton = 0

// maxGamepadButtons is how many button indices a snapshot keeps
const maxGamepadButtons = 16

// Input is what the player controller reads each frame
type Input interface {
	IsKeyDown(key Key) bool
	// Gamepad returns the first connected gamepad, if any
	Gamepad() (GamepadState, bool)
}

// GamepadState is a snapshot of one gamepad
type GamepadState struct {
	AxisX   float64 // left stick, -1 (left) .. +1 (right)
	AxisY   float64 // left stick, -1 (up) .. +1 (down)
	Buttons uint16  // bit i set = button i held
}

// IsButtonDown reports whether button index i is held
func (g GamepadState) IsButtonDown(i int) bool {
	if i < 0 || i >= maxGamepadButtons {
		return false
	}
	return g.Buttons&(1<<uint(i)) != 0
}

// InputState holds the input state for one frame
type InputState struct {
	Left  bool
	Right bool
	Up    bool

	GamepadConnected bool
	Pad              GamepadState
}

// IsKeyDown implements Input
func (s InputState) IsKeyDown(key Key) bool {
	switch key {
	case KeyLeft:
		return s.Left
	case KeyRight:
		return s.Right
	case KeyUp:
		return s.Up
	default:
		return false
	}
}

// Gamepad implements Input
func (s InputState) Gamepad() (GamepadState, bool) {
	return s.Pad, s.GamepadConnected
}

// InputSystem polls the keyboard and gamepads through ebiten
type InputSystem struct {
	gamepadIDs []ebiten.GamepadID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	state := InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
	}

	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	if len(s.gamepadIDs) == 0 {
		return state
	}

	state.GamepadConnected = true
	state.Pad = readGamepad(s.gamepadIDs[0])
	return state
}

func readGamepad(id ebiten.GamepadID) GamepadState {
	var pad GamepadState

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		pad.AxisX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		pad.AxisY = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		for i := 0; i <= int(ebiten.StandardGamepadButtonMax) && i < maxGamepadButtons; i++ {
			if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(i)) {
				pad.Buttons |= 1 << uint(i)
			}
		}
		return pad
	}

	if ebiten.GamepadAxisCount(id) > 0 {
		pad.AxisX = ebiten.GamepadAxisValue(id, 0)
	}
	if ebiten.GamepadAxisCount(id) > 1 {
		pad.AxisY = ebiten.GamepadAxisValue(id, 1)
	}
	for i := 0; i < ebiten.GamepadButtonCount(id) && i < maxGamepadButtons; i++ {
		if ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i)) {
			pad.Buttons |= 1 << uint(i)
		}
	}
	return pad
}
