// Package config provides YAML-based tuning and stage-script loading
// for the borno simulation.
package config

import "github.com/vovakirdan/borno/internal/core"

// Point is a world-space coordinate written as a [x, y] pair in YAML.
type Point [2]float64

// Vec converts the point to a core vector.
func (p Point) Vec() core.Vec2 {
	return core.V(p[0], p[1])
}

// Area is an axis-aligned rectangle given by its corners.
type Area struct {
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// Bounds converts the area to core bounds.
func (a Area) Bounds() core.Bounds {
	return core.Bounds{Min: a.Min.Vec(), Max: a.Max.Vec()}
}

// Tuning contains the compile-time-like constants of the game: field
// geometry, player handling and the default enemy shot.
type Tuning struct {
	Screen       ScreenConfig `yaml:"screen"`
	Field        Area         `yaml:"field"`         // Player movement is clamped here
	KillBoundary Area         `yaml:"kill_boundary"` // Entities leaving it are removed
	Player       PlayerConfig `yaml:"player"`
	EnemyShot    ShotConfig   `yaml:"enemy_shot"`
}

// ScreenConfig is the logical world size the renderer projects.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player movement, shooting and survival parameters.
type PlayerConfig struct {
	Start            Point      `yaml:"start"`
	NormalSpeed      float64    `yaml:"normal_speed"`
	FocusSpeed       float64    `yaml:"focus_speed"`
	HitboxRadius     float64    `yaml:"hitbox_radius"`
	Color            string     `yaml:"color"`
	ShootCooldown    float64    `yaml:"shoot_cooldown"`
	Shot             ShotConfig `yaml:"shot"`
	SplitShot        SplitShot  `yaml:"split_shot"`
	Lives            int        `yaml:"lives"`             // 0 = invulnerable, hits are only counted
	InvulnerableTime float64    `yaml:"invulnerable_time"` // Seconds of grace after losing a life
}

// SplitShot defines the pair of diagonal shots fired while focused.
type SplitShot struct {
	HSpeed float64 `yaml:"h_speed"`
	VSpeed float64 `yaml:"v_speed"`
}

// ShotConfig defines a projectile's look and speed.
type ShotConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
	Delay  float64 `yaml:"delay"` // Activation delay in seconds
}

// Stage is a scripted queue of enemy spawns.
type Stage struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Waves []Wave `yaml:"waves"`
}

// Wave schedules one enemy Delay seconds after the previous wave spawned.
type Wave struct {
	Delay float64     `yaml:"delay"`
	Enemy EnemyConfig `yaml:"enemy"`
}

// EnemyConfig describes a destructible and its optional emitter.
type EnemyConfig struct {
	Health     int              `yaml:"health"`
	Radius     float64          `yaml:"radius"`
	Points     int              `yaml:"points"`
	Color      string           `yaml:"color"`
	Trajectory TrajectoryConfig `yaml:"trajectory"`
	Pattern    *PatternConfig   `yaml:"pattern,omitempty"`
}

// Trajectory kinds accepted in stage scripts.
const (
	TrajectoryLinear       = "linear"
	TrajectoryAccelerated  = "accelerated"
	TrajectoryBounce       = "bounce"
	TrajectoryBezier       = "bezier"
	TrajectoryBezierPaused = "bezier_pause"
)

// TrajectoryConfig describes a closed-form path. Which fields matter
// depends on Kind.
type TrajectoryConfig struct {
	Kind       string  `yaml:"kind"`
	From       Point   `yaml:"from"`
	To         Point   `yaml:"to,omitempty"`
	Control    Point   `yaml:"control,omitempty"`
	Velocity   Point   `yaml:"velocity,omitempty"`
	Accel      Point   `yaml:"accel,omitempty"`
	TravelTime float64 `yaml:"travel_time,omitempty"`
	PauseAt    float64 `yaml:"pause_at,omitempty"`
	PauseFor   float64 `yaml:"pause_for,omitempty"`
}

// Pattern kinds accepted in stage scripts.
const (
	PatternSingleAimed = "single_aimed"
	PatternRing        = "ring"
	PatternSpinnyRing  = "spinny_ring"
	PatternAimRing     = "aim_ring"
)

// PatternConfig describes an emitter's spawn pattern. Angles are in degrees.
type PatternConfig struct {
	Kind         string        `yaml:"kind"`
	Cadence      float64       `yaml:"cadence"`
	Shots        int           `yaml:"shots,omitempty"`
	InitialAngle float64       `yaml:"initial_angle,omitempty"`
	Duration     float64       `yaml:"duration,omitempty"`
	ShotInterval float64       `yaml:"shot_interval,omitempty"`
	SpinAngle    float64       `yaml:"spin_angle,omitempty"`
	RingRadius   float64       `yaml:"ring_radius,omitempty"`
	Shot         *ShotOverride `yaml:"shot,omitempty"` // Merged over tuning's enemy_shot
}

// ShotOverride changes some fields of the tuning's enemy shot for one
// pattern. Zero radius and speed, an empty color and a missing delay keep
// the enemy shot's values.
type ShotOverride struct {
	Radius float64  `yaml:"radius,omitempty"`
	Speed  float64  `yaml:"speed,omitempty"`
	Color  string   `yaml:"color,omitempty"`
	Delay  *float64 `yaml:"delay,omitempty"`
}
