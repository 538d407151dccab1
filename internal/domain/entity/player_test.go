package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(2, 200)

	require.NotNil(t, p)
	assert.Equal(t, 1, p.Direction)
	assert.Equal(t, 2, p.Lives)
	assert.Zero(t, p.Score)
	assert.Zero(t, p.Power)
	assert.Equal(t, 200.0, p.JumpForce)
	assert.False(t, p.OnPlatform)
	assert.False(t, p.Jumping)
	assert.False(t, p.Invulnerable)
}

func TestPlayer_ResetMotion(t *testing.T) {
	p := NewPlayer(2, 200)
	p.Direction = -1
	p.OnPlatform = true
	p.Jumping = true
	p.JumpTimer = 0.1
	p.Lives = 1
	p.Score = 2
	p.Power = 1
	p.Invulnerable = true

	p.ResetMotion()

	assert.Equal(t, 1, p.Direction)
	assert.False(t, p.OnPlatform)
	assert.False(t, p.Jumping)
	assert.Zero(t, p.JumpTimer)

	// counters are untouched
	assert.Equal(t, 1, p.Lives)
	assert.Equal(t, 2, p.Score)
	assert.Equal(t, 1, p.Power)
	assert.True(t, p.Invulnerable)
}

func TestPlayer_ResetSession(t *testing.T) {
	p := NewPlayer(2, 200)
	p.Lives = 0
	p.Score = 3
	p.Power = 4
	p.JumpForce = 400
	p.Invulnerable = true
	p.Jumping = true
	p.GamepadMovement = true

	p.ResetSession(2, 200)

	assert.Equal(t, 2, p.Lives)
	assert.Zero(t, p.Score)
	assert.Zero(t, p.Power)
	assert.Equal(t, 200.0, p.JumpForce)
	assert.False(t, p.Invulnerable)
	assert.False(t, p.Jumping)
	assert.False(t, p.GamepadMovement)
}

func TestPlayer_Jump(t *testing.T) {
	t.Run("only from a platform", func(t *testing.T) {
		p := NewPlayer(2, 200)
		assert.False(t, p.CanJump())

		p.OnPlatform = true
		assert.True(t, p.CanJump())

		p.Jumping = true
		assert.False(t, p.CanJump())
	})

	t.Run("start", func(t *testing.T) {
		p := NewPlayer(2, 400)
		p.OnPlatform = true

		vy := p.StartJump(0.2)

		assert.Equal(t, -400.0, vy)
		assert.True(t, p.Jumping)
		assert.False(t, p.OnPlatform)
		assert.Equal(t, 0.2, p.JumpTimer)
	})

	tests := []struct {
		name        string
		timer       float64
		dt          float64
		vy          float64
		wantJumping bool
	}{
		{"rising", 0.2, 1.0 / 60, -180, true},
		{"timer expired", 0.01, 1.0 / 60, -150, false},
		{"timer hits zero exactly", 0.5, 0.5, -100, false},
		{"apex reached", 0.2, 1.0 / 60, 0, false},
		{"falling", 0.2, 1.0 / 60, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(2, 200)
			p.Jumping = true
			p.JumpTimer = tt.timer

			p.UpdateJump(tt.dt, tt.vy)

			assert.Equal(t, tt.wantJumping, p.Jumping)
			assert.InDelta(t, tt.timer-tt.dt, p.JumpTimer, 1e-9)
		})
	}

	t.Run("no-op when grounded", func(t *testing.T) {
		p := NewPlayer(2, 200)
		p.UpdateJump(1, -100)
		assert.Zero(t, p.JumpTimer)
	})
}

func TestPlayer_Counters(t *testing.T) {
	p := NewPlayer(2, 200)

	p.AddScore(1)
	p.AddScore(-5)
	assert.Equal(t, 1, p.Score, "negative values are ignored")
	assert.False(t, p.HasWon(3))
	p.AddScore(2)
	assert.True(t, p.HasWon(3))

	p.AddPower(2)
	p.AddPower(0)
	assert.Equal(t, 2, p.Power)

	p.LoseLife()
	assert.False(t, p.IsDead())
	p.LoseLife()
	assert.True(t, p.IsDead())
	p.LoseLife()
	assert.Zero(t, p.Lives, "lives never go negative")
}
