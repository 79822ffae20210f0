// Package danmaku implements the bullet-hell simulation: closed-form
// trajectories, spawn patterns, projectiles, destructible enemies that
// own emitters, the player, and the per-frame game loop.
//
// The package is pure logic. Front-ends feed it a frame delta and an
// input frame and read it back through a core.Canvas.
package danmaku

import (
	"math"

	"github.com/vovakirdan/borno/internal/core"
)

// TrajectoryKind selects the formula a Trajectory evaluates.
type TrajectoryKind int

const (
	TrajectoryLinear       TrajectoryKind = iota // from + v·t
	TrajectoryAccelerated                        // from + v·t + ½·a·t²
	TrajectoryBounce                             // x folds between the field's side edges
	TrajectoryBezier                             // quadratic Bézier over TravelTime
	TrajectoryBezierPaused                       // Bézier that hovers for PauseFor at PauseAt
)

// String returns the stage-script name of the kind.
func (k TrajectoryKind) String() string {
	switch k {
	case TrajectoryLinear:
		return "linear"
	case TrajectoryAccelerated:
		return "accelerated"
	case TrajectoryBounce:
		return "bounce"
	case TrajectoryBezier:
		return "bezier"
	case TrajectoryBezierPaused:
		return "bezier_pause"
	default:
		return "unknown"
	}
}

// Trajectory is a pure function from elapsed time to position.
// Entities never store their position; they evaluate At(elapsed).
type Trajectory struct {
	Kind     TrajectoryKind
	From     core.Vec2
	To       core.Vec2
	Control  core.Vec2
	Velocity core.Vec2
	Accel    core.Vec2

	TravelTime float64 // Bézier duration for u = 1
	PauseAt    float64
	PauseFor   float64

	Field core.Bounds // Bounce walls
}

// Linear returns a constant-velocity trajectory.
func Linear(from, velocity core.Vec2) Trajectory {
	return Trajectory{Kind: TrajectoryLinear, From: from, Velocity: velocity}
}

// Accelerated returns a constant-acceleration trajectory.
func Accelerated(from, velocity, accel core.Vec2) Trajectory {
	return Trajectory{Kind: TrajectoryAccelerated, From: from, Velocity: velocity, Accel: accel}
}

// Bounce returns a trajectory whose x coordinate reflects off the
// left and right edges of field.
func Bounce(from, velocity core.Vec2, field core.Bounds) Trajectory {
	return Trajectory{Kind: TrajectoryBounce, From: from, Velocity: velocity, Field: field}
}

// Bezier returns a quadratic Bézier from -> to bent towards control.
// The curve is not clamped and keeps extrapolating after travelTime.
func Bezier(from, to, control core.Vec2, travelTime float64) Trajectory {
	return Trajectory{
		Kind:       TrajectoryBezier,
		From:       from,
		To:         to,
		Control:    control,
		TravelTime: travelTime,
	}
}

// BezierPaused returns a Bézier that freezes at pauseAt for pauseFor seconds.
func BezierPaused(from, to, control core.Vec2, travelTime, pauseAt, pauseFor float64) Trajectory {
	tr := Bezier(from, to, control, travelTime)
	tr.Kind = TrajectoryBezierPaused
	tr.PauseAt = pauseAt
	tr.PauseFor = pauseFor
	return tr
}

// At evaluates the trajectory at time t. It has no side effects and
// accepts any t, including values smaller than a previous call.
func (tr Trajectory) At(t float64) core.Vec2 {
	switch tr.Kind {
	case TrajectoryAccelerated:
		return tr.From.Add(tr.Velocity.Scale(t)).Add(tr.Accel.Scale(0.5 * t * t))
	case TrajectoryBounce:
		return tr.bounce(t)
	case TrajectoryBezier:
		return tr.bezier(t / tr.travelTime())
	case TrajectoryBezierPaused:
		return tr.bezier(tr.pausedParam(t))
	default:
		return tr.From.Add(tr.Velocity.Scale(t))
	}
}

func (tr Trajectory) travelTime() float64 {
	if tr.TravelTime <= 0 {
		return 1
	}
	return tr.TravelTime
}

func (tr Trajectory) bezier(u float64) core.Vec2 {
	a := tr.From.Lerp(tr.Control, u)
	b := tr.Control.Lerp(tr.To, u)
	return a.Lerp(b, u)
}

// pausedParam maps time to the Bézier parameter, holding it constant
// during the pause window. After the window u = (t-PauseFor)/T, which
// joins the held value continuously.
func (tr Trajectory) pausedParam(t float64) float64 {
	T := tr.travelTime()
	switch {
	case t <= tr.PauseAt:
		return t / T
	case t <= tr.PauseAt+tr.PauseFor:
		return tr.PauseAt / T
	default:
		return (t - tr.PauseFor) / T
	}
}

func (tr Trajectory) bounce(t float64) core.Vec2 {
	y := tr.From.Y + tr.Velocity.Y*t
	w := tr.Field.Width()
	if w <= 0 {
		return core.V(tr.From.X+tr.Velocity.X*t, y)
	}

	left := tr.Field.Min.X
	dist := tr.From.X + tr.Velocity.X*t - left
	folds := math.Floor(dist / w)
	local := dist - folds*w

	x := left + local
	if math.Mod(folds, 2) != 0 {
		x = left + w - local
	}
	return core.V(x, y)
}
