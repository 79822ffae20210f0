package danmaku

import (
	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/core"
)

// Player is the user-controlled ship.
type Player struct {
	Position     core.Vec2
	Velocity     core.Vec2
	ShootTimer   float64
	Lives        int
	Invulnerable float64 // Seconds of grace left after losing a life

	cfg   playerTuning
	field core.Bounds
}

// playerTuning is config.PlayerConfig with colors resolved.
type playerTuning struct {
	normalSpeed  float64
	focusSpeed   float64
	hitbox       float64
	color        core.Color
	cooldown     float64
	shot         ShotSpec
	splitH       float64
	splitV       float64
	lives        int
	invulnerable float64
}

func newPlayerTuning(pc config.PlayerConfig) (playerTuning, error) {
	color, err := core.ParseColor(pc.Color)
	if err != nil {
		return playerTuning{}, err
	}
	shot, err := shotSpec(pc.Shot)
	if err != nil {
		return playerTuning{}, err
	}
	return playerTuning{
		normalSpeed:  pc.NormalSpeed,
		focusSpeed:   pc.FocusSpeed,
		hitbox:       pc.HitboxRadius,
		color:        color,
		cooldown:     pc.ShootCooldown,
		shot:         shot,
		splitH:       pc.SplitShot.HSpeed,
		splitV:       pc.SplitShot.VSpeed,
		lives:        pc.Lives,
		invulnerable: pc.InvulnerableTime,
	}, nil
}

func newPlayer(start core.Vec2, cfg playerTuning, field core.Bounds) Player {
	return Player{
		Position: field.Clamp(start),
		Lives:    cfg.lives,
		cfg:      cfg,
		field:    field,
	}
}

// Radius returns the hitbox radius.
func (p *Player) Radius() float64 {
	return p.cfg.hitbox
}

// Update moves the player inside the field, runs the shot cooldown and
// returns the projectiles fired this frame.
func (p *Player) Update(dt float64, in core.InputFrame) []Projectile {
	focus := in.Has(core.ActionFocus)

	speed := p.cfg.normalSpeed
	if focus {
		speed = p.cfg.focusSpeed
	}
	p.Velocity = in.Direction().Scale(speed)
	p.Position = p.field.Clamp(p.Position.Add(p.Velocity.Scale(dt)))

	if p.Invulnerable > 0 {
		p.Invulnerable -= dt
	}

	var shots []Projectile
	if in.Has(core.ActionFire) && p.ShootTimer <= 0 {
		shots = p.fire(focus)
		p.ShootTimer = p.cfg.cooldown
	} else if p.ShootTimer > 0 {
		p.ShootTimer -= dt
	}
	return shots
}

func (p *Player) fire(focus bool) []Projectile {
	s := p.cfg.shot
	if focus {
		return []Projectile{
			NewProjectile(s.Radius, s.Color, Linear(p.Position, core.V(p.cfg.splitH, -p.cfg.splitV)), s.Delay),
			NewProjectile(s.Radius, s.Color, Linear(p.Position, core.V(-p.cfg.splitH, -p.cfg.splitV)), s.Delay),
		}
	}
	return []Projectile{
		NewProjectile(s.Radius, s.Color, Linear(p.Position, core.V(0, -s.Speed)), s.Delay),
	}
}

// Blinking reports whether the player is drawn hidden this frame.
func (p *Player) Blinking() bool {
	return p.Invulnerable > 0 && int(p.Invulnerable*10)%2 == 1
}
