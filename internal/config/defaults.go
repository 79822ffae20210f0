package config

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

//go:embed defaults/stages/*.yaml
var defaultStages embed.FS

// DefaultTuning returns the hardcoded tuning, used when the embedded
// YAML cannot be parsed.
func DefaultTuning() Tuning {
	return Tuning{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Field: Area{
			Min: Point{320, 20},
			Max: Point{960, 700},
		},
		KillBoundary: Area{
			Min: Point{-50, -50},
			Max: Point{1330, 770},
		},
		Player: PlayerConfig{
			Start:         Point{640, 620},
			NormalSpeed:   360,
			FocusSpeed:    160,
			HitboxRadius:  5,
			Color:         "pink",
			ShootCooldown: 0.08,
			Shot: ShotConfig{
				Radius: 5,
				Speed:  900,
				Color:  "bright_green",
			},
			SplitShot: SplitShot{
				HSpeed: 180,
				VSpeed: 850,
			},
			Lives:            3,
			InvulnerableTime: 2.0,
		},
		EnemyShot: ShotConfig{
			Radius: 8,
			Speed:  400,
			Color:  "purple",
			Delay:  0.1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a document name:
// "tuning" or a built-in stage ID.
func GetDefaultYAML(name string) []byte {
	if name == "tuning" {
		return defaultTuningYAML
	}
	data, err := defaultStages.ReadFile(path.Join("defaults/stages", name+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// StageIDs returns the IDs of the built-in stages, sorted.
func StageIDs() []string {
	entries, err := defaultStages.ReadDir("defaults/stages")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(ids)
	return ids
}
