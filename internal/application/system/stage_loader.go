package system

import (
	"math"

	"github.com/younwookim/hopper/internal/ecs"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// SpawnPoint returns where the player starts. Stages without an explicit
// spawn place the player right of the display center, resting half its
// height above the midline.
func SpawnPoint(stage *config.StageConfig, tuning *config.TuningConfig) (x, y float64) {
	if stage != nil && stage.PlayerSpawn != nil {
		return stage.PlayerSpawn.X, stage.PlayerSpawn.Y
	}
	w := float64(tuning.Display.ScreenWidth)
	h := float64(tuning.Display.ScreenHeight)
	return w/2 + 100, h/2 - tuning.Player.Height/2
}

// StageExtent returns the area a stage covers: its declared size, or the
// display when none is given, grown to hold every entity and the spawn.
func StageExtent(stage *config.StageConfig, tuning *config.TuningConfig) (width, height int) {
	width = stage.Size.Width
	if width <= 0 {
		width = tuning.Display.ScreenWidth
	}
	height = stage.Size.Height
	if height <= 0 {
		height = tuning.Display.ScreenHeight
	}

	grow := func(x, y, w, h float64) {
		if r := int(math.Ceil(x + w)); r > width {
			width = r
		}
		if b := int(math.Ceil(y + h)); b > height {
			height = b
		}
	}
	for _, r := range stage.Platforms {
		grow(r.X, r.Y, r.W, r.H)
	}
	for _, c := range stage.Collectibles {
		grow(c.X, c.Y, c.W, c.H)
	}
	for _, r := range stage.Jumpboosts {
		grow(r.X, r.Y, r.W, r.H)
	}
	for _, p := range stage.Powers {
		grow(p.X, p.Y, p.W, p.H)
	}
	for _, r := range stage.Enemies {
		grow(r.X, r.Y, r.W, r.H)
	}
	x, y := SpawnPoint(stage, tuning)
	grow(x, y, tuning.Player.Width, tuning.Player.Height)
	return width, height
}

// LoadStage builds a world from a StageConfig, including the player at its spawn
func LoadStage(stage *config.StageConfig, tuning *config.TuningConfig) *ecs.World {
	width, height := StageExtent(stage, tuning)
	w := ecs.NewWorld(width, height, tuning.Physics.Gravity)

	for _, r := range stage.Platforms {
		w.CreatePlatform(r.X, r.Y, r.W, r.H)
	}
	for _, c := range stage.Collectibles {
		w.CreateCollectible(c.X, c.Y, c.W, c.H, c.Value)
	}
	for _, r := range stage.Jumpboosts {
		w.CreateJumpboost(r.X, r.Y, r.W, r.H)
	}
	for _, p := range stage.Powers {
		w.CreatePower(p.X, p.Y, p.W, p.H, p.Value)
	}
	for _, r := range stage.Enemies {
		w.CreateEnemy(r.X, r.Y, r.W, r.H)
	}

	x, y := SpawnPoint(stage, tuning)
	w.CreatePlayer(x, y, tuning.Player.Width, tuning.Player.Height)

	return w
}
