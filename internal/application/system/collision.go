package system

import (
	"log"

	"github.com/younwookim/hopper/internal/application/schedule"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/ecs"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// dispatchOrder is the order kinds are resolved in each frame.
// Platforms come last so landing never hides a pickup or a hit.
var dispatchOrder = []ecs.Kind{
	ecs.KindCollectible,
	ecs.KindJumpboost,
	ecs.KindPower,
	ecs.KindEnemy,
	ecs.KindPlatform,
}

// CollisionSystem resolves the player's overlaps with everything else
type CollisionSystem struct {
	config    *config.TuningConfig
	world     *ecs.World
	scheduler *schedule.Scheduler

	// Event callbacks
	OnPlayerHit func() // player lost a life and must be repositioned
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.TuningConfig, world *ecs.World, scheduler *schedule.Scheduler) *CollisionSystem {
	return &CollisionSystem{
		config:    cfg,
		world:     world,
		scheduler: scheduler,
	}
}

// SetConfig swaps the tuning used from the next frame on
func (s *CollisionSystem) SetConfig(cfg *config.TuningConfig) {
	s.config = cfg
}

// Update applies one effect per overlapping entity, kind by kind.
// Each kind is scanned from the overlaps found when its pass starts, and
// every entry is re-tested against the player's current box, so removals
// and repositions earlier in the pass are respected.
func (s *CollisionSystem) Update(player *entity.Player) {
	pid := s.world.PlayerID
	if !s.world.Exists(pid) {
		return
	}

	for _, kind := range dispatchOrder {
		if kind == ecs.KindPlatform {
			player.OnPlatform = false
		}
		for _, id := range s.world.Overlapping(pid, kind) {
			if !s.world.Exists(id) || !s.world.Overlaps(pid, id) {
				continue
			}
			s.resolve(player, kind, id)
		}
	}
}

func (s *CollisionSystem) resolve(player *entity.Player, kind ecs.Kind, id ecs.EntityID) {
	switch kind {
	case ecs.KindCollectible:
		s.collect(player, id)
	case ecs.KindJumpboost:
		s.collectBoost(player, id)
	case ecs.KindPower:
		s.collectPower(player, id)
	case ecs.KindEnemy:
		s.hitEnemy(player, id)
	case ecs.KindPlatform:
		s.land(player, id)
	}
}

func (s *CollisionSystem) collect(player *entity.Player, id ecs.EntityID) {
	player.AddScore(s.world.Value[id])
	log.Printf("Score: %d", player.Score)
	s.emit(config.EffectCollect)
	s.world.DestroyEntity(id)
}

func (s *CollisionSystem) collectBoost(player *entity.Player, id ecs.EntityID) {
	player.JumpForce = s.config.Jump.BoostedForce
	base := s.config.Jump.Force
	s.scheduler.After(s.config.Jump.BoostDuration(), func() {
		player.JumpForce = base
	})
	s.emit(config.EffectBoost)
	s.world.DestroyEntity(id)
}

func (s *CollisionSystem) collectPower(player *entity.Player, id ecs.EntityID) {
	player.AddPower(s.world.Value[id])
	log.Printf("Power: %d", player.Power)
	s.emit(config.EffectPower)
	s.world.DestroyEntity(id)
}

// hitEnemy spends a power charge to defeat the enemy, or costs a life
// when there is none. Invulnerability only guards against the life loss.
func (s *CollisionSystem) hitEnemy(player *entity.Player, id ecs.EntityID) {
	switch {
	case player.Power > 0:
		player.Power--
		player.Invulnerable = true
		s.emit(config.EffectKill)
		s.world.DestroyEntity(id)
		s.scheduler.After(s.config.Status.KillInvulnerability(), func() {
			player.Invulnerable = false
		})
	case !player.Invulnerable:
		player.LoseLife()
		player.Invulnerable = true
		s.emit(config.EffectHit)
		s.scheduler.After(s.config.Status.HitInvulnerability(), func() {
			player.Invulnerable = false
		})
		if s.OnPlayerHit != nil {
			s.OnPlayerHit()
		}
	}
}

// land rests the player on top of a platform unless it is mid-jump
func (s *CollisionSystem) land(player *entity.Player, id ecs.EntityID) {
	if player.Jumping {
		return
	}
	pid := s.world.PlayerID
	body := s.world.Body[pid]
	platform := s.world.Body[id]

	body.Velocity.Y = 0
	body.Acceleration.Y = 0
	body.Y = platform.Top() - body.H
	s.world.SetBody(pid, body)
	player.OnPlatform = true
}

// emit spawns the named effect at the player's position
func (s *CollisionSystem) emit(name string) {
	fx, ok := s.config.Effects[name]
	if !ok {
		return
	}
	body := s.world.Body[s.world.PlayerID]
	s.world.EmitEffect(body.X, body.Y, EffectPreset(fx))
}

// EffectPreset converts an effect config into an ecs preset
func EffectPreset(fx config.EffectConfig) ecs.EffectPreset {
	return ecs.EffectPreset{
		Color:    fx.RGBA(),
		Count:    fx.Count,
		Lifetime: fx.Lifetime,
		Spread:   fx.Spread,
	}
}
