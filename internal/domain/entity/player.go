package entity

// Player holds the player's gameplay state.
// Position and motion live on the player's physics body in the world.
type Player struct {
	Direction int // +1 facing right, -1 facing left

	Lives int
	Score int
	Power int

	// Jump state machine
	OnPlatform bool
	Jumping    bool
	JumpForce  float64 // upward speed applied at jump start
	JumpTimer  float64 // seconds left in the current jump

	Invulnerable bool

	// Recomputed every frame
	GamepadMovement bool
	GamepadJump     bool
}

// NewPlayer creates a player with a fresh session
func NewPlayer(lives int, jumpForce float64) *Player {
	p := &Player{}
	p.ResetSession(lives, jumpForce)
	return p
}

// ResetMotion clears facing, jump and platform flags.
// Lives, score and power are left alone.
func (p *Player) ResetMotion() {
	p.Direction = 1
	p.OnPlatform = false
	p.Jumping = false
	p.JumpTimer = 0
}

// ResetSession restores every counter and flag to its starting value
func (p *Player) ResetSession(lives int, jumpForce float64) {
	p.Lives = lives
	p.Score = 0
	p.Power = 0
	p.JumpForce = jumpForce
	p.Invulnerable = false
	p.GamepadMovement = false
	p.GamepadJump = false
	p.ResetMotion()
}

// CanJump returns true if a jump may start this frame
func (p *Player) CanJump() bool {
	return p.OnPlatform && !p.Jumping
}

// StartJump enters the airborne state and returns the vertical velocity to apply
func (p *Player) StartJump(duration float64) float64 {
	p.Jumping = true
	p.JumpTimer = duration
	p.OnPlatform = false
	return -p.JumpForce
}

// UpdateJump counts the jump timer down and ends the jump on expiry or
// once vertical velocity stops pointing up
func (p *Player) UpdateJump(dt, vy float64) {
	if !p.Jumping {
		return
	}
	p.JumpTimer -= dt
	if p.JumpTimer <= 0 || vy >= 0 {
		p.Jumping = false
	}
}

// AddScore adds a collectible's value
func (p *Player) AddScore(v int) {
	if v > 0 {
		p.Score += v
	}
}

// AddPower adds a power item's value
func (p *Player) AddPower(v int) {
	if v > 0 {
		p.Power += v
	}
}

// LoseLife takes one life, never going below zero
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// IsDead returns true once all lives are gone
func (p *Player) IsDead() bool {
	return p.Lives <= 0
}

// HasWon returns true once score reaches the threshold
func (p *Player) HasWon(winScore int) bool {
	return p.Score >= winScore
}
