package ecs

import "math"

// IntegrateBody advances one entity's body by dt seconds.
// Velocity picks up acceleration (plus gravity for dynamic bodies) first,
// then position moves by the updated velocity.
func IntegrateBody(w *World, id EntityID, dt float64) {
	body, ok := w.Body[id]
	if !ok {
		return
	}

	ax := body.Acceleration.X
	ay := body.Acceleration.Y
	if body.Dynamic {
		ay += w.Gravity
	}

	body.Velocity.X += ax * dt
	body.Velocity.Y += ay * dt
	body.X += body.Velocity.X * dt
	body.Y += body.Velocity.Y * dt

	w.SetBody(id, body)
}

// UpdateEffects ages every particle burst and removes the expired ones
func UpdateEffects(w *World, dt float64) {
	for _, id := range w.ByKind(KindEffect) {
		fx, ok := w.Effect[id]
		if !ok {
			w.DestroyEntity(id)
			continue
		}

		fx.Age += dt
		alpha, done := fx.fade.Update(float32(dt))
		fx.Alpha = alpha
		if done || fx.Age >= fx.Preset.Lifetime {
			w.DestroyEntity(id)
			continue
		}
		w.Effect[id] = fx
	}
}

// Particle is one rendered point of a burst, relative to the burst origin
type Particle struct {
	DX, DY float64
	Size   float64
}

// particleRadius is how far a spread-1 burst travels over its lifetime
const particleRadius = 60.0

// Particles lays out a burst's particles for its current age.
// Particles fan out on evenly spaced angles; spread scales the distance.
func (e *Effect) Particles() []Particle {
	n := e.Preset.Count
	if n <= 0 {
		return nil
	}
	dist := particleRadius * e.Preset.Spread * e.Progress()
	size := 3 * (1 - e.Progress())
	if size < 1 {
		size = 1
	}

	out := make([]Particle, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		// alternate rings so neighbours don't overlap
		r := dist
		if i%2 == 1 {
			r *= 0.6
		}
		out[i] = Particle{
			DX:   math.Cos(angle) * r,
			DY:   math.Sin(angle) * r,
			Size: size,
		}
	}
	return out
}
