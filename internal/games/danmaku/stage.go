package danmaku

import (
	"fmt"
	"math"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/core"
)

// world holds the resolved tuning shared by a game's entities.
type world struct {
	screen    core.Bounds
	field     core.Bounds
	kill      core.Bounds
	start     core.Vec2
	player    playerTuning
	enemyShot ShotSpec
}

func newWorld(t config.Tuning) (world, error) {
	pt, err := newPlayerTuning(t.Player)
	if err != nil {
		return world{}, fmt.Errorf("danmaku: player: %w", err)
	}
	shot, err := shotSpec(t.EnemyShot)
	if err != nil {
		return world{}, fmt.Errorf("danmaku: enemy shot: %w", err)
	}
	return world{
		screen:    core.NewBounds(0, 0, t.Screen.Width, t.Screen.Height),
		field:     t.Field.Bounds(),
		kill:      t.KillBoundary.Bounds(),
		start:     t.Player.Start.Vec(),
		player:    pt,
		enemyShot: shot,
	}, nil
}

// BuildSpawnQueue converts a stage script into spawn entries.
func BuildSpawnQueue(stage config.Stage, tuning config.Tuning) ([]SpawnEntry, error) {
	w, err := newWorld(tuning)
	if err != nil {
		return nil, err
	}
	return w.entries(stage)
}

func (w world) entries(stage config.Stage) ([]SpawnEntry, error) {
	entries := make([]SpawnEntry, 0, len(stage.Waves))
	for i, wave := range stage.Waves {
		spec, err := w.destructible(wave.Enemy)
		if err != nil {
			return nil, fmt.Errorf("danmaku: stage %q wave %d: %w", stage.ID, i+1, err)
		}
		entries = append(entries, SpawnEntry{Delay: wave.Delay, Spec: spec})
	}
	return entries, nil
}

func (w world) destructible(ec config.EnemyConfig) (DestructibleSpec, error) {
	color := core.ColorBlue
	if ec.Color != "" {
		c, err := core.ParseColor(ec.Color)
		if err != nil {
			return DestructibleSpec{}, err
		}
		color = c
	}

	path, err := w.trajectory(ec.Trajectory)
	if err != nil {
		return DestructibleSpec{}, err
	}

	spec := DestructibleSpec{
		Radius: ec.Radius,
		Color:  color,
		Path:   path,
		Health: ec.Health,
		Points: ec.Points,
	}

	if ec.Pattern != nil {
		p, err := w.pattern(*ec.Pattern)
		if err != nil {
			return DestructibleSpec{}, err
		}
		spec.Pattern = &p
	}
	return spec, nil
}

func (w world) trajectory(tc config.TrajectoryConfig) (Trajectory, error) {
	from := tc.From.Vec()
	switch tc.Kind {
	case config.TrajectoryLinear, "":
		return Linear(from, tc.Velocity.Vec()), nil
	case config.TrajectoryAccelerated:
		return Accelerated(from, tc.Velocity.Vec(), tc.Accel.Vec()), nil
	case config.TrajectoryBounce:
		return Bounce(from, tc.Velocity.Vec(), w.field), nil
	case config.TrajectoryBezier:
		return Bezier(from, tc.To.Vec(), tc.Control.Vec(), tc.TravelTime), nil
	case config.TrajectoryBezierPaused:
		return BezierPaused(from, tc.To.Vec(), tc.Control.Vec(), tc.TravelTime, tc.PauseAt, tc.PauseFor), nil
	default:
		return Trajectory{}, fmt.Errorf("unknown trajectory %q", tc.Kind)
	}
}

func (w world) pattern(pc config.PatternConfig) (Pattern, error) {
	shot := w.enemyShot
	if pc.Shot != nil {
		s, err := overrideShot(shot, *pc.Shot)
		if err != nil {
			return Pattern{}, err
		}
		shot = s
	}

	angle := radians(pc.InitialAngle)
	var p Pattern
	switch pc.Kind {
	case config.PatternSingleAimed:
		p = SingleAimed(pc.Cadence)
	case config.PatternRing:
		p = Ring(pc.Shots, pc.Cadence, angle)
	case config.PatternSpinnyRing:
		p = SpinnyRing(pc.Shots, pc.Cadence, angle, pc.Duration, pc.ShotInterval, radians(pc.SpinAngle))
	case config.PatternAimRing:
		p = AimRing(pc.Shots, pc.RingRadius, pc.Cadence, angle)
	default:
		return Pattern{}, fmt.Errorf("unknown pattern %q", pc.Kind)
	}
	return p.WithShot(shot), nil
}

func shotSpec(sc config.ShotConfig) (ShotSpec, error) {
	s := DefaultShot()
	if sc.Radius > 0 {
		s.Radius = sc.Radius
	}
	if sc.Speed > 0 {
		s.Speed = sc.Speed
	}
	s.Delay = sc.Delay
	if sc.Color != "" {
		c, err := core.ParseColor(sc.Color)
		if err != nil {
			return ShotSpec{}, err
		}
		s.Color = c
	}
	return s, nil
}

// overrideShot applies the fields an override sets on top of base.
func overrideShot(base ShotSpec, o config.ShotOverride) (ShotSpec, error) {
	if o.Radius > 0 {
		base.Radius = o.Radius
	}
	if o.Speed > 0 {
		base.Speed = o.Speed
	}
	if o.Delay != nil {
		base.Delay = *o.Delay
	}
	if o.Color != "" {
		c, err := core.ParseColor(o.Color)
		if err != nil {
			return ShotSpec{}, err
		}
		base.Color = c
	}
	return base, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
