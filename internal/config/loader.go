package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTuning loads the game tuning. Values missing from the file keep their defaults.
// Search order: customPath -> ~/.borno/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func LoadTuning(customPath string) (Tuning, error) {
	cfg := DefaultTuning()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read tuning %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse tuning %s: %w", customPath, err)
		}
		if err := ValidateTuning(cfg); err != nil {
			return cfg, fmt.Errorf("config: invalid tuning %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, p := range []string{userPath("configs", "tuning.yaml"), filepath.Join("configs", "tuning.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		candidate := DefaultTuning()
		if err := yaml.Unmarshal(data, &candidate); err == nil && ValidateTuning(candidate) == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadStage loads a stage by built-in ID or by file path.
// A reference ending in .yaml/.yml or containing a path separator is read as a file.
// Otherwise the search order is: ~/.borno/stages/<id>.yaml -> ./stages/<id>.yaml -> embedded stage.
func LoadStage(ref string) (Stage, error) {
	if ref == "" {
		return Stage{}, fmt.Errorf("config: empty stage reference")
	}

	if IsStageFile(ref) {
		return LoadStageFile(ref)
	}

	for _, p := range []string{userPath("stages", ref+".yaml"), filepath.Join("stages", ref+".yaml")} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return LoadStageFile(p)
		}
	}

	data := GetDefaultYAML(ref)
	if data == nil {
		return Stage{}, fmt.Errorf("config: unknown stage %q", ref)
	}
	return ParseStage(data)
}

// LoadStageFile reads and validates a stage script from disk. A script
// without an id takes the file's base name.
func LoadStageFile(path string) (Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stage{}, fmt.Errorf("config: failed to read stage %s: %w", path, err)
	}
	stage, err := decodeStage(data)
	if err != nil {
		return Stage{}, fmt.Errorf("%s: %w", path, err)
	}
	if stage.ID == "" {
		stage.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	stage, err = finishStage(stage)
	if err != nil {
		return Stage{}, fmt.Errorf("%s: %w", path, err)
	}
	return stage, nil
}

// ParseStage decodes a stage script strictly (unknown keys are errors) and validates it.
func ParseStage(data []byte) (Stage, error) {
	stage, err := decodeStage(data)
	if err != nil {
		return Stage{}, err
	}
	return finishStage(stage)
}

func decodeStage(data []byte) (Stage, error) {
	var stage Stage

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&stage); err != nil {
		return Stage{}, fmt.Errorf("config: failed to parse stage: %w", err)
	}
	return stage, nil
}

// finishStage validates a decoded stage and fills in its display name.
func finishStage(stage Stage) (Stage, error) {
	if err := ValidateStage(stage); err != nil {
		return Stage{}, fmt.Errorf("config: invalid stage %q: %w", stage.ID, err)
	}
	if stage.Name == "" {
		stage.Name = stage.ID
	}
	return stage, nil
}

// IsStageFile reports whether ref names a file rather than a stage ID.
func IsStageFile(ref string) bool {
	ext := strings.ToLower(filepath.Ext(ref))
	return ext == ".yaml" || ext == ".yml" || strings.ContainsRune(ref, os.PathSeparator) || strings.ContainsRune(ref, '/')
}

// userPath returns a path under ~/.borno, or empty if home is unavailable.
func userPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".borno"}, elem...)...)
}
