package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.typewar/configs/typewar.yaml -> ./configs/typewar.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func Load(customPath string) (TypewarConfig, error) {
	if customPath != "" {
		cfg := DefaultTypewarConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("typewar.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "typewar.yaml")); ok {
		return cfg, nil
	}

	cfg := DefaultTypewarConfig()
	if err := yaml.Unmarshal(defaultTypewarYAML, &cfg); err != nil {
		return DefaultTypewarConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; missing or broken files are skipped.
func tryLoad(path string) (TypewarConfig, bool) {
	cfg := DefaultTypewarConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".typewar", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset. Speeds
// at score 0 are the configured speed times the preset's multiplier; easy
// and hard then speed up with the score. normal leaves the config as is.
func ApplyPreset(cfg *TypewarConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Gameplay.HitPoints = 150
		cfg.Gameplay.Speed *= 0.75
		cfg.Gameplay.SpawnPeriodMs = cfg.Gameplay.SpawnPeriodMs * 5 / 4
		enableProgression(cfg)
	case DifficultyHard:
		cfg.Gameplay.HitPoints = 50
		cfg.Gameplay.Speed *= 1.5
		cfg.Gameplay.SpawnPeriodMs = cfg.Gameplay.SpawnPeriodMs * 3 / 4
		enableProgression(cfg)
	}
}

// enableProgression turns progression on starting from level 0.
func enableProgression(cfg *TypewarConfig) {
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 0
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}
}
