package danmaku

import (
	"math"

	"github.com/vovakirdan/borno/internal/core"
)

// Default enemy shot, used when a pattern has no explicit ShotSpec.
const (
	DefaultShotRadius = 8.0
	DefaultShotSpeed  = 400.0
	DefaultShotDelay  = 0.1
)

// PatternKind selects how an emitter spawns projectiles.
type PatternKind int

const (
	PatternSingleAimed PatternKind = iota // One shot at the target
	PatternRing                           // N shots evenly spaced around a circle
	PatternSpinnyRing                     // Repeated rings rotating over Duration
	PatternAimRing                        // N origins around the emitter, all aimed at the target
)

// String returns the stage-script name of the kind.
func (k PatternKind) String() string {
	switch k {
	case PatternSingleAimed:
		return "single_aimed"
	case PatternRing:
		return "ring"
	case PatternSpinnyRing:
		return "spinny_ring"
	case PatternAimRing:
		return "aim_ring"
	default:
		return "unknown"
	}
}

// ShotSpec is the look and speed of every projectile a pattern spawns.
type ShotSpec struct {
	Radius float64
	Speed  float64
	Color  core.Color
	Delay  float64 // Activation delay, the projectile stays dormant until it elapses
}

// DefaultShot returns the basic enemy shot.
func DefaultShot() ShotSpec {
	return ShotSpec{
		Radius: DefaultShotRadius,
		Speed:  DefaultShotSpeed,
		Color:  core.ColorPurple,
		Delay:  DefaultShotDelay,
	}
}

// SpawnEvent is a projectile scheduled at an absolute emitter time.
type SpawnEvent struct {
	At         float64
	Projectile Projectile
}

// Pattern is a spawn function described by its parameters.
// Angles are in radians, times in seconds.
type Pattern struct {
	Kind         PatternKind
	Shots        int
	Cadence      float64
	InitialAngle float64
	Duration     float64 // Spinny: length of the attack after each tick
	ShotInterval float64 // Spinny: time between rings
	SpinAngle    float64 // Spinny: total rotation over Duration
	RingRadius   float64 // AimRing: distance of the origins from the emitter
	Shot         ShotSpec
}

// SingleAimed fires one shot at the target every cadence seconds.
func SingleAimed(cadence float64) Pattern {
	return Pattern{Kind: PatternSingleAimed, Shots: 1, Cadence: cadence, Shot: DefaultShot()}
}

// Ring fires shots evenly around a full circle every cadence seconds.
func Ring(shots int, cadence, initialAngle float64) Pattern {
	return Pattern{
		Kind:         PatternRing,
		Shots:        shots,
		Cadence:      cadence,
		InitialAngle: initialAngle,
		Shot:         DefaultShot(),
	}
}

// SpinnyRing fires a ring every shotInterval for duration seconds after each
// cadence tick, rotating the rings linearly up to spinAngle.
func SpinnyRing(shots int, cadence, initialAngle, duration, shotInterval, spinAngle float64) Pattern {
	return Pattern{
		Kind:         PatternSpinnyRing,
		Shots:        shots,
		Cadence:      cadence,
		InitialAngle: initialAngle,
		Duration:     duration,
		ShotInterval: shotInterval,
		SpinAngle:    spinAngle,
		Shot:         DefaultShot(),
	}
}

// AimRing places shots on a circle around the emitter and aims each one
// along the emitter-to-target direction.
func AimRing(shots int, ringRadius, cadence, initialAngle float64) Pattern {
	return Pattern{
		Kind:         PatternAimRing,
		Shots:        shots,
		Cadence:      cadence,
		InitialAngle: initialAngle,
		RingRadius:   ringRadius,
		Shot:         DefaultShot(),
	}
}

// WithShot returns a copy of the pattern using the given shot.
func (p Pattern) WithShot(s ShotSpec) Pattern {
	p.Shot = s
	return p
}

// Spawn returns the events whose scheduled time falls in (et, et+dt].
// One batch is produced for every cadence boundary crossed, so splitting
// a delta across frames yields the same events as a single call.
func (p Pattern) Spawn(et, dt float64, origin, target core.Vec2) []SpawnEvent {
	if p.Cadence <= 0 || dt <= 0 {
		return nil
	}
	if p.Kind != PatternSingleAimed && p.Shots <= 0 {
		return nil
	}

	first := math.Floor(et/p.Cadence) + 1
	last := math.Floor((et + dt) / p.Cadence)

	var events []SpawnEvent
	for k := first; k <= last; k++ {
		events = p.tick(events, k*p.Cadence, origin, target)
	}
	return events
}

func (p Pattern) tick(events []SpawnEvent, at float64, origin, target core.Vec2) []SpawnEvent {
	switch p.Kind {
	case PatternSingleAimed:
		return append(events, p.event(at, origin, aim(origin, target)))

	case PatternRing:
		return p.ring(events, at, origin, p.InitialAngle)

	case PatternSpinnyRing:
		if p.ShotInterval <= 0 {
			return p.ring(events, at, origin, p.InitialAngle)
		}
		for i := 0; ; i++ {
			t := float64(i) * p.ShotInterval
			if t > p.Duration+1e-9 {
				break
			}
			offset := 0.0
			if p.Duration > 0 {
				offset = p.SpinAngle * t / p.Duration
			}
			events = p.ring(events, at+t, origin, p.InitialAngle+offset)
		}
		return events

	case PatternAimRing:
		dir := aim(origin, target)
		segment := 2 * math.Pi / float64(p.Shots)
		for i := 0; i < p.Shots; i++ {
			angle := p.InitialAngle + float64(i)*segment
			from := origin.Add(core.FromAngle(angle, p.RingRadius))
			events = append(events, p.event(at, from, dir))
		}
		return events
	}
	return events
}

func (p Pattern) ring(events []SpawnEvent, at float64, origin core.Vec2, base float64) []SpawnEvent {
	segment := 2 * math.Pi / float64(p.Shots)
	for i := 0; i < p.Shots; i++ {
		dir := core.FromAngle(base+float64(i)*segment, 1)
		events = append(events, p.event(at, origin, dir))
	}
	return events
}

func (p Pattern) event(at float64, from, dir core.Vec2) SpawnEvent {
	return SpawnEvent{
		At: at,
		Projectile: NewProjectile(
			p.Shot.Radius,
			p.Shot.Color,
			Linear(from, dir.Scale(p.Shot.Speed)),
			p.Shot.Delay,
		),
	}
}

// aim returns the unit direction from origin to target. A target sitting
// on the origin gets a straight-down shot so the projectile still leaves.
func aim(origin, target core.Vec2) core.Vec2 {
	dir := target.Sub(origin).Normalize()
	if dir.LenSqr() == 0 {
		return core.V(0, 1)
	}
	return dir
}
