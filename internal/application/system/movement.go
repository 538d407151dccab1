package system

import (
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/ecs"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// MovementSystem turns input into horizontal velocity and drives the
// jump state machine
type MovementSystem struct {
	config *config.TuningConfig

	// Jump buttons held last frame, for edge detection
	prevKeyJump bool
	prevPadJump bool
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.TuningConfig) *MovementSystem {
	return &MovementSystem{config: cfg}
}

// SetConfig swaps the tuning used from the next frame on
func (s *MovementSystem) SetConfig(cfg *config.TuningConfig) {
	s.config = cfg
}

// Update applies one frame of input to the player and its body.
// The gamepad is resolved first; a stick pushed past the deadzone owns
// horizontal movement for the frame and the keyboard is ignored.
func (s *MovementSystem) Update(player *entity.Player, body *ecs.Body, input Input) {
	player.GamepadMovement = false
	player.GamepadJump = false

	pad, hasPad := input.Gamepad()
	padJump := hasPad && pad.IsButtonDown(GamepadJumpButton)
	keyJump := input.IsKeyDown(KeyUp)
	padJumpPressed := padJump && !s.prevPadJump
	keyJumpPressed := keyJump && !s.prevKeyJump
	s.prevPadJump = padJump
	s.prevKeyJump = keyJump

	if hasPad {
		s.handleGamepadMovement(player, body, pad)
	}
	if !player.GamepadMovement {
		s.handleKeyboardMovement(player, body, input)
	}

	// Jump: gamepad first, keyboard only if the gamepad did not jump
	if padJumpPressed && player.CanJump() {
		player.GamepadJump = true
		body.Velocity.Y = player.StartJump(s.config.Jump.Duration)
	}
	if !player.GamepadJump && keyJumpPressed && player.CanJump() {
		body.Velocity.Y = player.StartJump(s.config.Jump.Duration)
	}
}

// UpdateJump advances an active jump by dt
func (s *MovementSystem) UpdateJump(player *entity.Player, body *ecs.Body, dt float64) {
	player.UpdateJump(dt, body.Velocity.Y)
}

func (s *MovementSystem) handleGamepadMovement(player *entity.Player, body *ecs.Body, pad GamepadState) {
	deadzone := s.config.Movement.Deadzone
	speed := s.config.Movement.GamepadSpeed

	switch {
	case pad.AxisX > deadzone:
		player.GamepadMovement = true
		body.Velocity.X = speed
		player.Direction = 1
	case pad.AxisX < -deadzone:
		player.GamepadMovement = true
		body.Velocity.X = -speed
		player.Direction = -1
	}
}

func (s *MovementSystem) handleKeyboardMovement(player *entity.Player, body *ecs.Body, input Input) {
	speed := s.config.Movement.KeySpeed

	switch {
	case input.IsKeyDown(KeyRight):
		body.Velocity.X = speed
		player.Direction = 1
	case input.IsKeyDown(KeyLeft):
		body.Velocity.X = -speed
		player.Direction = -1
	default:
		body.Velocity.X = 0
	}
}
