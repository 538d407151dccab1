package system

import (
	"github.com/younwookim/hopper/internal/application/schedule"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/ecs"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// PlayerController runs the player for one session: movement, collision
// dispatch, timed effects and the win/loss flow
type PlayerController struct {
	config    *config.TuningConfig
	world     *ecs.World
	player    *entity.Player
	input     Input
	scheduler *schedule.Scheduler

	movement  *MovementSystem
	collision *CollisionSystem

	spawnX, spawnY float64
	outcome        state.Outcome
}

// NewPlayerController creates a controller for the world's player entity
func NewPlayerController(cfg *config.TuningConfig, world *ecs.World) *PlayerController {
	scheduler := schedule.New()
	spawn := world.GetPlayerBody()

	c := &PlayerController{
		config:    cfg,
		world:     world,
		player:    entity.NewPlayer(cfg.Player.Lives, cfg.Jump.Force),
		input:     InputState{},
		scheduler: scheduler,
		movement:  NewMovementSystem(cfg),
		collision: NewCollisionSystem(cfg, world, scheduler),
		spawnX:    spawn.X,
		spawnY:    spawn.Y,
	}
	c.collision.OnPlayerHit = c.Reposition
	return c
}

// SetInput sets the input read by the next Update
func (c *PlayerController) SetInput(input Input) {
	c.input = input
}

// SetConfig swaps the tuning. Counters already in play are kept.
func (c *PlayerController) SetConfig(cfg *config.TuningConfig) {
	c.config = cfg
	c.movement.SetConfig(cfg)
	c.collision.SetConfig(cfg)
	c.world.Gravity = cfg.Physics.Gravity
}

// Update advances the player by dt seconds
func (c *PlayerController) Update(dt float64) {
	c.outcome = state.OutcomeNone
	pid := c.world.PlayerID
	if !c.world.Exists(pid) {
		return
	}

	// Timed effects expire at the start of the frame
	c.scheduler.Advance(schedule.FromSeconds(dt))

	body := c.world.Body[pid]
	c.movement.Update(c.player, &body, c.input)
	c.movement.UpdateJump(c.player, &body, dt)
	c.world.SetBody(pid, body)

	c.collision.Update(c.player)

	// Fall, loss and win checks, in that order
	if c.world.Body[pid].Y > float64(c.config.Display.ScreenHeight) {
		c.Reposition()
	}
	if c.player.IsDead() {
		c.ResetSession()
		c.outcome = state.OutcomeLoss
	}
	if c.player.HasWon(c.config.Player.WinScore) {
		c.ResetSession()
		c.outcome = state.OutcomeWin
	}

	ecs.IntegrateBody(c.world, pid, dt)
}

// Reposition puts the player back at spawn, at rest, without touching
// lives, score or power
func (c *PlayerController) Reposition() {
	pid := c.world.PlayerID
	body := c.world.Body[pid]
	body.X = c.spawnX
	body.Y = c.spawnY
	body.Velocity = ecs.Vec2{}
	body.Acceleration = ecs.Vec2{}
	c.world.SetBody(pid, body)
	c.player.ResetMotion()
}

// ResetSession restores every counter, drops pending timed effects and
// repositions the player
func (c *PlayerController) ResetSession() {
	c.scheduler.Clear()
	c.player.ResetSession(c.config.Player.Lives, c.config.Jump.Force)
	c.Reposition()
}

// Outcome returns the terminal signal raised by the last Update
func (c *PlayerController) Outcome() state.Outcome {
	return c.outcome
}

// Player returns the player's gameplay state
func (c *PlayerController) Player() *entity.Player {
	return c.player
}

// Boosted returns true while a jumpboost is in effect
func (c *PlayerController) Boosted() bool {
	return c.player.JumpForce > c.config.Jump.Force
}

// PendingEffects returns the number of timed effects not yet expired
func (c *PlayerController) PendingEffects() int {
	return c.scheduler.Pending()
}

// Body returns the player's physics body
func (c *PlayerController) Body() ecs.Body {
	return c.world.GetPlayerBody()
}

// Spawn returns the player's spawn point
func (c *PlayerController) Spawn() (x, y float64) {
	return c.spawnX, c.spawnY
}
