package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"golang.org/x/image/colornames"
)

// TuningConfig is the root config for tuning.yaml
type TuningConfig struct {
	Display  DisplayConfig           `yaml:"display"`
	Physics  PhysicsSettings         `yaml:"physics"`
	Player   PlayerConfig            `yaml:"player"`
	Movement MovementConfig          `yaml:"movement"`
	Jump     JumpConfig              `yaml:"jump"`
	Status   StatusConfig            `yaml:"status"`
	Effects  map[string]EffectConfig `yaml:"effects"`
}

// DisplayConfig describes the visible window in world units
type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity float64 `yaml:"gravity"` // world units/s²
}

type PlayerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Lives    int     `yaml:"lives"`
	WinScore int     `yaml:"winScore"`
}

type MovementConfig struct {
	KeySpeed     float64 `yaml:"keySpeed"`     // world units/s
	GamepadSpeed float64 `yaml:"gamepadSpeed"` // world units/s
	Deadzone     float64 `yaml:"deadzone"`     // stick magnitude ignored
}

type JumpConfig struct {
	Force           float64 `yaml:"force"`
	BoostedForce    float64 `yaml:"boostedForce"`
	Duration        float64 `yaml:"duration"` // seconds
	BoostDurationMs int     `yaml:"boostDurationMs"`
}

// BoostDuration returns how long a jumpboost lasts
func (j JumpConfig) BoostDuration() time.Duration {
	return time.Duration(j.BoostDurationMs) * time.Millisecond
}

type StatusConfig struct {
	KillInvulnerabilityMs int `yaml:"killInvulnerabilityMs"`
	HitInvulnerabilityMs  int `yaml:"hitInvulnerabilityMs"`
}

// KillInvulnerability returns the grace period after defeating an enemy
func (s StatusConfig) KillInvulnerability() time.Duration {
	return time.Duration(s.KillInvulnerabilityMs) * time.Millisecond
}

// HitInvulnerability returns the grace period after taking a hit
func (s StatusConfig) HitInvulnerability() time.Duration {
	return time.Duration(s.HitInvulnerabilityMs) * time.Millisecond
}

// EffectConfig describes a particle burst. Color is a CSS color name.
type EffectConfig struct {
	Color    string  `yaml:"color"`
	Count    int     `yaml:"count"`
	Lifetime float64 `yaml:"lifetime"` // seconds
	Spread   float64 `yaml:"spread"`
}

// RGBA resolves the color name, falling back to white
func (e EffectConfig) RGBA() color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(e.Color)]; ok {
		return c
	}
	return colornames.White
}

// Effect names used by the player controller
const (
	EffectCollect = "collect"
	EffectBoost   = "boost"
	EffectPower   = "power"
	EffectHit     = "hit"
	EffectKill    = "kill"
)

// Default returns the built-in tuning. Loaded files override it field by field.
func Default() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{Gravity: 300},
		Player: PlayerConfig{
			Width:    50,
			Height:   50,
			Lives:    2,
			WinScore: 3,
		},
		Movement: MovementConfig{
			KeySpeed:     150,
			GamepadSpeed: 100,
			Deadzone:     0.1,
		},
		Jump: JumpConfig{
			Force:           200,
			BoostedForce:    400,
			Duration:        0.2,
			BoostDurationMs: 5000,
		},
		Status: StatusConfig{
			KillInvulnerabilityMs: 1000,
			HitInvulnerabilityMs:  2000,
		},
		Effects: map[string]EffectConfig{
			EffectCollect: {Color: "yellow", Count: 30, Lifetime: 1, Spread: 0.5},
			EffectBoost:   {Color: "white", Count: 30, Lifetime: 1, Spread: 0.5},
			EffectPower:   {Color: "white", Count: 30, Lifetime: 1, Spread: 0.5},
			EffectHit:     {Color: "red", Count: 40, Lifetime: 1.5, Spread: 1},
			EffectKill:    {Color: "limegreen", Count: 40, Lifetime: 1.5, Spread: 1},
		},
	}
}

// Validate checks the values the game cannot run without
func (c *TuningConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.Lives <= 0 {
		return fmt.Errorf("player lives must be positive, got %d", c.Player.Lives)
	}
	if c.Player.WinScore <= 0 {
		return fmt.Errorf("win score must be positive, got %d", c.Player.WinScore)
	}
	for name, fx := range c.Effects {
		if _, ok := colornames.Map[strings.ToLower(fx.Color)]; !ok {
			return fmt.Errorf("effect %s: unknown color %q", name, fx.Color)
		}
		if fx.Lifetime <= 0 {
			return fmt.Errorf("effect %s: lifetime must be positive", name)
		}
	}
	return nil
}
