package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hopper/internal/application/schedule"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/ecs"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

type collisionFixture struct {
	world     *ecs.World
	player    *entity.Player
	scheduler *schedule.Scheduler
	sys       *CollisionSystem
	hits      int
}

// newCollisionFixture places a 50x50 player at (100, 100)
func newCollisionFixture() *collisionFixture {
	f := &collisionFixture{
		world:     ecs.NewWorld(800, 600, 300),
		player:    entity.NewPlayer(2, 200),
		scheduler: schedule.New(),
	}
	f.world.CreatePlayer(100, 100, 50, 50)
	f.sys = NewCollisionSystem(config.Default(), f.world, f.scheduler)
	f.sys.OnPlayerHit = func() { f.hits++ }
	return f
}

func TestCollisionSystem_Collectible(t *testing.T) {
	f := newCollisionFixture()
	coin := f.world.CreateCollectible(110, 110, 30, 30, 1)
	big := f.world.CreateCollectible(120, 120, 30, 30, 2)
	far := f.world.CreateCollectible(400, 400, 30, 30, 1)

	f.sys.Update(f.player)

	assert.Equal(t, 3, f.player.Score, "every overlapping collectible counts once")
	assert.False(t, f.world.Exists(coin))
	assert.False(t, f.world.Exists(big))
	assert.True(t, f.world.Exists(far))
	assert.Equal(t, 2, f.world.Count(ecs.KindEffect))

	f.sys.Update(f.player)
	assert.Equal(t, 3, f.player.Score, "removed collectibles are gone")
}

func TestCollisionSystem_Jumpboost(t *testing.T) {
	f := newCollisionFixture()
	boost := f.world.CreateJumpboost(110, 110, 20, 20)

	f.sys.Update(f.player)

	assert.Equal(t, 400.0, f.player.JumpForce)
	assert.False(t, f.world.Exists(boost))
	assert.Equal(t, 1, f.scheduler.Pending())

	f.scheduler.Advance(5*time.Second - time.Nanosecond)
	assert.Equal(t, 400.0, f.player.JumpForce)
	f.scheduler.Advance(time.Nanosecond)
	assert.Equal(t, 200.0, f.player.JumpForce)
}

func TestCollisionSystem_Power(t *testing.T) {
	f := newCollisionFixture()
	item := f.world.CreatePower(110, 110, 20, 20, 2)

	f.sys.Update(f.player)

	assert.Equal(t, 2, f.player.Power)
	assert.False(t, f.world.Exists(item))
	assert.Equal(t, 1, f.world.Count(ecs.KindEffect))
}

func TestCollisionSystem_Enemy(t *testing.T) {
	t.Run("power defeats the enemy", func(t *testing.T) {
		f := newCollisionFixture()
		f.player.Power = 1
		enemy := f.world.CreateEnemy(120, 100, 50, 50)

		f.sys.Update(f.player)

		assert.Zero(t, f.player.Power)
		assert.Equal(t, 2, f.player.Lives)
		assert.True(t, f.player.Invulnerable)
		assert.False(t, f.world.Exists(enemy))
		assert.Zero(t, f.hits)

		f.scheduler.Advance(time.Second)
		assert.False(t, f.player.Invulnerable)
	})

	t.Run("power works while invulnerable", func(t *testing.T) {
		f := newCollisionFixture()
		f.player.Power = 1
		f.player.Invulnerable = true
		enemy := f.world.CreateEnemy(120, 100, 50, 50)

		f.sys.Update(f.player)

		assert.Zero(t, f.player.Power)
		assert.False(t, f.world.Exists(enemy))
	})

	t.Run("hit costs a life", func(t *testing.T) {
		f := newCollisionFixture()
		enemy := f.world.CreateEnemy(120, 100, 50, 50)

		f.sys.Update(f.player)

		assert.Equal(t, 1, f.player.Lives)
		assert.True(t, f.player.Invulnerable)
		assert.True(t, f.world.Exists(enemy), "enemies survive hits")
		assert.Equal(t, 1, f.hits)

		assert.Len(t, f.world.ByKind(ecs.KindEffect), 1)

		f.scheduler.Advance(2*time.Second - time.Nanosecond)
		assert.True(t, f.player.Invulnerable)
		f.scheduler.Advance(time.Nanosecond)
		assert.False(t, f.player.Invulnerable)
	})

	t.Run("invulnerable ignores hits", func(t *testing.T) {
		f := newCollisionFixture()
		f.player.Invulnerable = true
		f.world.CreateEnemy(120, 100, 50, 50)

		f.sys.Update(f.player)

		assert.Equal(t, 2, f.player.Lives)
		assert.Zero(t, f.hits)
		assert.Zero(t, f.scheduler.Pending())
	})

	t.Run("damage is not stacked within a frame", func(t *testing.T) {
		f := newCollisionFixture()
		f.world.CreateEnemy(120, 100, 50, 50)
		f.world.CreateEnemy(90, 100, 50, 50)

		f.sys.Update(f.player)

		assert.Equal(t, 1, f.player.Lives)
		assert.Equal(t, 1, f.hits)
	})
}

func TestCollisionSystem_Platform(t *testing.T) {
	t.Run("lands on top", func(t *testing.T) {
		f := newCollisionFixture()
		f.world.CreatePlatform(80, 140, 150, 25)
		body := f.world.Body[f.world.PlayerID]
		body.Velocity.Y = 120
		body.Acceleration.Y = 10
		f.world.SetBody(f.world.PlayerID, body)

		f.sys.Update(f.player)

		body = f.world.GetPlayerBody()
		assert.True(t, f.player.OnPlatform)
		assert.Equal(t, 90.0, body.Y)
		assert.Zero(t, body.Velocity.Y)
		assert.Zero(t, body.Acceleration.Y)
	})

	t.Run("ignored mid-jump", func(t *testing.T) {
		f := newCollisionFixture()
		f.world.CreatePlatform(80, 140, 150, 25)
		f.player.Jumping = true
		f.player.OnPlatform = true

		f.sys.Update(f.player)

		assert.False(t, f.player.OnPlatform)
		assert.Equal(t, 100.0, f.world.GetPlayerBody().Y)
	})

	t.Run("cleared without overlap", func(t *testing.T) {
		f := newCollisionFixture()
		f.player.OnPlatform = true

		f.sys.Update(f.player)

		assert.False(t, f.player.OnPlatform)
	})

	t.Run("touching edge is not an overlap", func(t *testing.T) {
		f := newCollisionFixture()
		f.world.CreatePlatform(80, 150, 150, 25)

		f.sys.Update(f.player)

		assert.False(t, f.player.OnPlatform)
	})
}

func TestCollisionSystem_DispatchOrder(t *testing.T) {
	t.Run("power is picked up before enemies", func(t *testing.T) {
		f := newCollisionFixture()
		f.world.CreatePower(110, 110, 20, 20, 1)
		enemy := f.world.CreateEnemy(120, 100, 50, 50)

		f.sys.Update(f.player)

		assert.Zero(t, f.player.Power)
		assert.Equal(t, 2, f.player.Lives)
		assert.False(t, f.world.Exists(enemy))
	})

	t.Run("pickups resolve before landing", func(t *testing.T) {
		f := newCollisionFixture()
		f.world.CreatePlatform(80, 140, 150, 25)
		coin := f.world.CreateCollectible(110, 95, 30, 10, 1) // above the landing spot

		f.sys.Update(f.player)

		assert.Equal(t, 1, f.player.Score)
		assert.False(t, f.world.Exists(coin))
		assert.True(t, f.player.OnPlatform)
	})

	t.Run("reposition before platforms", func(t *testing.T) {
		f := newCollisionFixture()
		f.world.CreateEnemy(120, 100, 50, 50)
		f.world.CreatePlatform(80, 140, 150, 25)
		f.sys.OnPlayerHit = func() {
			body := f.world.GetPlayerBody()
			body.X, body.Y = 500, 300
			f.world.SetBody(f.world.PlayerID, body)
		}

		f.sys.Update(f.player)

		assert.False(t, f.player.OnPlatform, "platform is tested against the new position")
		assert.Equal(t, 300.0, f.world.GetPlayerBody().Y)
	})
}

func TestCollisionSystem_Effects(t *testing.T) {
	f := newCollisionFixture()
	f.world.CreateCollectible(110, 110, 30, 30, 1)

	f.sys.Update(f.player)

	ids := f.world.ByKind(ecs.KindEffect)
	require.Len(t, ids, 1)
	fx := f.world.Effect[ids[0]]
	assert.Equal(t, 30, fx.Preset.Count)
	assert.Equal(t, 1.0, fx.Preset.Lifetime)
	assert.Equal(t, 0.5, fx.Preset.Spread)
	assert.Equal(t, uint8(255), fx.Preset.Color.R)
	assert.Equal(t, uint8(255), fx.Preset.Color.G)
	assert.Equal(t, 100.0, f.world.Body[ids[0]].X, "spawned at the player")
}

func TestCollisionSystem_NoPlayer(t *testing.T) {
	w := ecs.NewWorld(800, 600, 300)
	w.CreateCollectible(0, 0, 30, 30, 1)
	sys := NewCollisionSystem(config.Default(), w, schedule.New())
	player := entity.NewPlayer(2, 200)

	sys.Update(player)

	assert.Zero(t, player.Score)
}
