package ecs

import (
	"image/color"

	"github.com/tanema/gween"
)

// Kind tags an entity with the role it plays in collision dispatch
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindCollectible
	KindJumpboost
	KindPower
	KindEnemy
	KindEffect
)

// String returns the kind name, also used as the broadphase tag
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindCollectible:
		return "collectible"
	case KindJumpboost:
		return "jumpboost"
	case KindPower:
		return "power"
	case KindEnemy:
		return "enemy"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Vec2 is a plain 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Body is the physics facet of an entity: an axis-aligned box plus
// linear velocity and acceleration (world units, seconds).
type Body struct {
	X, Y float64 // top-left corner
	W, H float64

	Velocity     Vec2
	Acceleration Vec2

	// Dynamic bodies receive world gravity during integration
	Dynamic bool
}

// Left returns the left edge
func (b Body) Left() float64 { return b.X }

// Right returns the right edge
func (b Body) Right() float64 { return b.X + b.W }

// Top returns the top edge
func (b Body) Top() float64 { return b.Y }

// Bottom returns the bottom edge
func (b Body) Bottom() float64 { return b.Y + b.H }

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (b Body) Overlaps(o Body) bool {
	return b.Left() < o.Right() && b.Right() > o.Left() && b.Top() < o.Bottom() && b.Bottom() > o.Top()
}

// EffectPreset describes a particle burst
type EffectPreset struct {
	Color    color.RGBA
	Count    int
	Lifetime float64 // seconds
	Spread   float64
}

// Effect is a short-lived particle burst spawned at a point.
// Its alpha fades from 1 to 0 over the preset lifetime.
type Effect struct {
	Preset EffectPreset
	Age    float64 // seconds
	Alpha  float32

	fade *gween.Tween
}

// Progress returns the normalized age in [0, 1]
func (e *Effect) Progress() float64 {
	if e.Preset.Lifetime <= 0 {
		return 1
	}
	p := e.Age / e.Preset.Lifetime
	if p > 1 {
		return 1
	}
	return p
}
