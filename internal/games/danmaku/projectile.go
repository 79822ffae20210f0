package danmaku

import "github.com/vovakirdan/borno/internal/core"

// Projectile is a collidable circle moving along a trajectory.
// While Delay is positive the projectile is dormant and does not move.
type Projectile struct {
	Radius  float64
	Color   core.Color
	Path    Trajectory
	Delay   float64
	Elapsed float64

	dead    bool // Marked for removal this frame
	touched bool // Already counted as a hit on an invulnerable player
}

// NewProjectile creates a projectile at the start of its path.
func NewProjectile(radius float64, color core.Color, path Trajectory, delay float64) Projectile {
	return Projectile{
		Radius: radius,
		Color:  color,
		Path:   path,
		Delay:  delay,
	}
}

// Position returns the current position on the path.
func (p *Projectile) Position() core.Vec2 {
	return p.Path.At(p.Elapsed)
}

// Dormant reports whether the activation delay is still running.
func (p *Projectile) Dormant() bool {
	return p.Delay > 0
}

// Update advances the projectile by dt and reports whether it left kill.
// A dormant projectile spends dt on its delay instead of moving.
func (p *Projectile) Update(dt float64, kill core.Bounds) bool {
	if p.Delay > 0 {
		p.Delay -= dt
	} else {
		p.Elapsed += dt
	}
	return !kill.Contains(p.Position())
}

// Collide reports whether the projectile overlaps a circle.
// Exact tangency is not a hit.
func (p *Projectile) Collide(center core.Vec2, radius float64) bool {
	return Overlap(p.Position(), p.Radius, center, radius)
}

// Overlap is the strict circle-circle test |a-b|² < (ra+rb)².
func Overlap(a core.Vec2, ra float64, b core.Vec2, rb float64) bool {
	r := ra + rb
	return a.DistSqr(b) < r*r
}
