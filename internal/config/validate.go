package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/borno/internal/core"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ValidateTuning checks field geometry, speeds and colors.
func ValidateTuning(t Tuning) error {
	if t.Screen.Width <= 0 || t.Screen.Height <= 0 {
		return invalid("INVALID_SCREEN", "screen size must be positive, got %gx%g", t.Screen.Width, t.Screen.Height)
	}

	field := t.Field.Bounds()
	kill := t.KillBoundary.Bounds()
	if field.Width() <= 0 || field.Height() <= 0 {
		return invalid("INVALID_FIELD", "field min must be above and left of max")
	}
	if !kill.Contains(field.Min) || !kill.Contains(field.Max) {
		return invalid("INVALID_KILL_BOUNDARY", "kill boundary must contain the playing field")
	}

	p := t.Player
	if p.NormalSpeed <= 0 || p.FocusSpeed <= 0 {
		return invalid("INVALID_SPEED", "player speeds must be positive")
	}
	if p.HitboxRadius <= 0 {
		return invalid("INVALID_RADIUS", "player hitbox radius must be positive")
	}
	if p.ShootCooldown < 0 || p.InvulnerableTime < 0 {
		return invalid("INVALID_TIMER", "player cooldown and invulnerable time must not be negative")
	}
	if p.Lives < 0 {
		return invalid("INVALID_LIVES", "player lives must not be negative, got %d", p.Lives)
	}
	if err := validateColor("player", p.Color); err != nil {
		return err
	}
	if err := validateShot("player shot", p.Shot); err != nil {
		return err
	}
	return validateShot("enemy shot", t.EnemyShot)
}

// ValidateStage checks every wave of a stage script.
func ValidateStage(s Stage) error {
	if s.ID == "" {
		return invalid("MISSING_ID", "stage has no id")
	}
	if len(s.Waves) == 0 {
		return invalid("EMPTY_STAGE", "stage %q has no waves", s.ID)
	}

	for i, w := range s.Waves {
		if err := validateWave(w); err != nil {
			var ve ValidationError
			if errors.As(err, &ve) {
				ve.Message = fmt.Sprintf("wave %d: %s", i+1, ve.Message)
				return ve
			}
			return err
		}
	}
	return nil
}

func validateWave(w Wave) error {
	if w.Delay < 0 {
		return invalid("NEGATIVE_DELAY", "delay must not be negative, got %g", w.Delay)
	}

	e := w.Enemy
	if e.Health <= 0 {
		return invalid("INVALID_HEALTH", "health must be positive, got %d", e.Health)
	}
	if e.Radius <= 0 {
		return invalid("INVALID_RADIUS", "radius must be positive, got %g", e.Radius)
	}
	if e.Points < 0 {
		return invalid("INVALID_POINTS", "points must not be negative, got %d", e.Points)
	}
	if err := validateColor("enemy", e.Color); err != nil {
		return err
	}
	if err := validateTrajectory(e.Trajectory); err != nil {
		return err
	}
	if e.Pattern != nil {
		return validatePattern(*e.Pattern)
	}
	return nil
}

func validateTrajectory(tr TrajectoryConfig) error {
	switch tr.Kind {
	case "", TrajectoryLinear, TrajectoryAccelerated, TrajectoryBounce:
		return nil
	case TrajectoryBezier, TrajectoryBezierPaused:
		if tr.TravelTime <= 0 {
			return invalid("INVALID_TRAVEL_TIME", "%s travel_time must be positive", tr.Kind)
		}
		if tr.PauseAt < 0 || tr.PauseFor < 0 {
			return invalid("INVALID_PAUSE", "pause_at and pause_for must not be negative")
		}
		return nil
	default:
		return invalid("UNKNOWN_TRAJECTORY", "unknown trajectory kind %q", tr.Kind)
	}
}

func validatePattern(p PatternConfig) error {
	switch p.Kind {
	case PatternSingleAimed:
	case PatternRing, PatternAimRing:
		if p.Shots <= 0 {
			return invalid("INVALID_SHOTS", "%s needs at least one shot", p.Kind)
		}
		if p.RingRadius < 0 {
			return invalid("INVALID_RADIUS", "ring_radius must not be negative")
		}
	case PatternSpinnyRing:
		if p.Shots <= 0 {
			return invalid("INVALID_SHOTS", "%s needs at least one shot", p.Kind)
		}
		if p.Duration < 0 {
			return invalid("INVALID_DURATION", "duration must not be negative")
		}
		if p.ShotInterval <= 0 {
			return invalid("INVALID_INTERVAL", "shot_interval must be positive")
		}
	default:
		return invalid("UNKNOWN_PATTERN", "unknown pattern kind %q", p.Kind)
	}

	if p.Cadence <= 0 {
		return invalid("INVALID_CADENCE", "cadence must be positive, got %g", p.Cadence)
	}
	if p.Shot != nil {
		return validateShotOverride(*p.Shot)
	}
	return nil
}

func validateShotOverride(o ShotOverride) error {
	if o.Radius < 0 {
		return invalid("INVALID_SHOT", "pattern shot radius must not be negative")
	}
	if o.Speed < 0 {
		return invalid("INVALID_SHOT", "pattern shot speed must not be negative")
	}
	if o.Delay != nil && *o.Delay < 0 {
		return invalid("INVALID_SHOT", "pattern shot delay must not be negative")
	}
	return validateColor("pattern shot", o.Color)
}

func validateShot(what string, s ShotConfig) error {
	if s.Radius <= 0 {
		return invalid("INVALID_SHOT", "%s radius must be positive", what)
	}
	if s.Speed <= 0 {
		return invalid("INVALID_SHOT", "%s speed must be positive", what)
	}
	if s.Delay < 0 {
		return invalid("INVALID_SHOT", "%s delay must not be negative", what)
	}
	return validateColor(what, s.Color)
}

func validateColor(what, name string) error {
	if name == "" {
		return nil
	}
	if _, err := core.ParseColor(name); err != nil {
		return invalid("INVALID_COLOR", "%s: %v", what, err)
	}
	return nil
}
