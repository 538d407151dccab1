package config

import (
	"image/color"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadTuning(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 300.0, cfg.Physics.Gravity)
	assert.Equal(t, 150.0, cfg.Movement.KeySpeed)
	assert.Equal(t, 100.0, cfg.Movement.GamepadSpeed)
	assert.Equal(t, 0.1, cfg.Movement.Deadzone)
	assert.Equal(t, 200.0, cfg.Jump.Force)
	assert.Equal(t, 400.0, cfg.Jump.BoostedForce)
	assert.Equal(t, 5*time.Second, cfg.Jump.BoostDuration())
	assert.Equal(t, time.Second, cfg.Status.KillInvulnerability())
	assert.Equal(t, 2*time.Second, cfg.Status.HitInvulnerability())

	kill, ok := cfg.Effects[EffectKill]
	require.True(t, ok)
	assert.Equal(t, colornames.Limegreen, kill.RGBA())
	assert.Equal(t, 40, kill.Count)
	assert.Equal(t, 1.5, kill.Lifetime)
}

func TestLoader_LoadTuning_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		TuningFile: {Data: []byte("physics:\n  gravity: 500\n")},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Physics.Gravity)
	assert.Equal(t, Default().Jump, cfg.Jump, "missing sections keep defaults")
	assert.Equal(t, Default().Display, cfg.Display)
	assert.Len(t, cfg.Effects, 5)
}

func TestLoader_LoadTuning_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing file", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{TuningFile: {Data: []byte("display: [")}}},
		{"invalid lives", fstest.MapFS{TuningFile: {Data: []byte("player:\n  lives: 0\n")}}},
		{"unknown color", fstest.MapFS{TuningFile: {Data: []byte("effects:\n  hit: {color: notacolor, count: 1, lifetime: 1}\n")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, ".").LoadTuning()
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader(configDir)

	for _, name := range []string{"level1", "level1.json", "level1.tmx"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := loader.LoadStage(name)
			require.NoError(t, err)

			assert.Equal(t, "level1", cfg.ID)
			assert.Equal(t, 1400, cfg.Size.Width)
			assert.Equal(t, 600, cfg.Size.Height)
			assert.Len(t, cfg.Platforms, 9)
			assert.Len(t, cfg.Collectibles, 3)
			assert.Len(t, cfg.Jumpboosts, 1)
			assert.Len(t, cfg.Powers, 1)
			assert.Len(t, cfg.Enemies, 3)

			assert.Equal(t, RectConfig{X: 0, Y: 580, W: 150, H: 25}, cfg.Platforms[0])
			assert.Equal(t, RectConfig{X: 570, Y: 210, W: 150, H: 25}, cfg.Platforms[8])
			assert.Equal(t, 1, cfg.Collectibles[1].Value)
			assert.Equal(t, 630.0, cfg.Collectibles[1].X)
			assert.Equal(t, 880.0, cfg.Powers[0].X)
			assert.Equal(t, 1, cfg.Powers[0].Value)
			assert.Equal(t, 300.0, cfg.Enemies[1].X)
		})
	}
}

func TestLoader_LoadStage_TMXSpawn(t *testing.T) {
	cfg, err := NewLoader(configDir).LoadStage("level1.tmx")
	require.NoError(t, err)

	require.NotNil(t, cfg.PlayerSpawn)
	assert.Equal(t, PositionConfig{X: 500, Y: 275}, *cfg.PlayerSpawn)
}

func TestLoader_LoadStage_DefaultValues(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/mini.json": {Data: []byte(`{
			"size": {"width": 100, "height": 100},
			"collectibles": [{"x": 1, "y": 2, "w": 3, "h": 4}],
			"powers": [{"x": 1, "y": 2, "w": 3, "h": 4, "value": 2}]
		}`)},
	}

	cfg, err := NewFSLoader(fsys, ".").LoadStage("mini")
	require.NoError(t, err)

	assert.Equal(t, "mini", cfg.ID, "ID falls back to the file name")
	assert.Nil(t, cfg.PlayerSpawn)
	assert.Equal(t, 1, cfg.Collectibles[0].Value)
	assert.Equal(t, 2, cfg.Powers[0].Value)
	assert.Equal(t, 3.0, cfg.Collectibles[0].W)
}

func TestLoader_LoadStage_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/broken.json": {Data: []byte(`{"size": `)},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadStage("missing")
	assert.Error(t, err)

	_, err = loader.LoadStage("broken")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll("level1")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Tuning)
	assert.NotNil(t, cfg.Stage)
}

func TestEffectConfig_RGBA(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  color.RGBA
	}{
		{"lowercase", "yellow", colornames.Yellow},
		{"mixed case", "LimeGreen", colornames.Limegreen},
		{"unknown", "nope", colornames.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectConfig{Color: tt.color}.RGBA())
		})
	}
}

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}
