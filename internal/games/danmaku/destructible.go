package danmaku

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/borno/internal/core"
)

// flashDuration is how long a destructible stays highlighted after a hit.
const flashDuration = 0.15

// Destructible is a damageable enemy moving along a trajectory.
// It may own an emitter in the game's arena; the emitter follows it.
type Destructible struct {
	Radius  float64
	Color   core.Color
	Path    Trajectory
	Health  int
	Points  int
	Elapsed float64
	Emitter EmitterHandle // Zero value when the destructible does not shoot

	flash      *gween.Tween
	flashLevel float32
	dead       bool
}

// Position returns the current position on the path.
func (d *Destructible) Position() core.Vec2 {
	return d.Path.At(d.Elapsed)
}

// Update advances the destructible and reports whether it left kill.
func (d *Destructible) Update(dt float64, kill core.Bounds) bool {
	d.Elapsed += dt

	if d.flash != nil {
		level, done := d.flash.Update(float32(dt))
		d.flashLevel = level
		if done {
			d.flash = nil
			d.flashLevel = 0
		}
	}

	return !kill.Contains(d.Position())
}

// Hurt applies one point of damage and reports whether the destructible
// is destroyed. Health never drops below zero.
func (d *Destructible) Hurt() bool {
	if d.Health > 0 {
		d.Health--
	}
	d.flash = gween.New(1, 0, flashDuration, ease.OutQuad)
	d.flashLevel = 1
	return d.Health <= 0
}

// Flash returns the hit highlight level in [0, 1].
func (d *Destructible) Flash() float32 {
	return d.flashLevel
}
