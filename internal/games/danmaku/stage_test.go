package danmaku

import (
	"testing"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/core"
)

func TestBuildSpawnQueueDefaultsToLinear(t *testing.T) {
	stage := targetStage(1)
	stage.Waves[0].Enemy.Trajectory = config.TrajectoryConfig{
		From:     config.Point{100, 50},
		Velocity: config.Point{0, 10},
	}
	if err := config.ValidateStage(stage); err != nil {
		t.Fatalf("ValidateStage() failed: %v", err)
	}

	entries, err := BuildSpawnQueue(stage, config.DefaultTuning())
	if err != nil {
		t.Fatalf("BuildSpawnQueue() failed: %v", err)
	}
	path := entries[0].Spec.Path
	if path.Kind != TrajectoryLinear {
		t.Errorf("kind = %v, expected linear", path.Kind)
	}
	if got := path.Velocity; got != core.V(0, 10) {
		t.Errorf("velocity = %v, expected (0,10)", got)
	}
}

func TestPatternShotOverride(t *testing.T) {
	tun := config.DefaultTuning()
	base := tun.EnemyShot
	delay := 0.5

	tests := []struct {
		name     string
		override *config.ShotOverride
		radius   float64
		speed    float64
		color    core.Color
		delay    float64
	}{
		{"none", nil, base.Radius, base.Speed, core.ColorPurple, base.Delay},
		{"color only", &config.ShotOverride{Color: "red"}, base.Radius, base.Speed, core.ColorRed, base.Delay},
		{"speed and delay", &config.ShotOverride{Speed: 600, Delay: &delay}, base.Radius, 600, core.ColorPurple, 0.5},
		{"radius", &config.ShotOverride{Radius: 3}, 3, base.Speed, core.ColorPurple, base.Delay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stage := targetStage(1)
			stage.Waves[0].Enemy.Pattern.Shot = tc.override
			if err := config.ValidateStage(stage); err != nil {
				t.Fatalf("ValidateStage() failed: %v", err)
			}

			entries, err := BuildSpawnQueue(stage, tun)
			if err != nil {
				t.Fatalf("BuildSpawnQueue() failed: %v", err)
			}
			shot := entries[0].Spec.Pattern.Shot
			if shot.Radius != tc.radius || shot.Speed != tc.speed || shot.Delay != tc.delay {
				t.Errorf("shot = %+v, expected radius %g speed %g delay %g", shot, tc.radius, tc.speed, tc.delay)
			}
			if shot.Color != tc.color {
				t.Errorf("color = %v, expected %v", shot.Color, tc.color)
			}
		})
	}
}
