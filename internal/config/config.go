// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// TypewarConfig contains all configuration for the game.
type TypewarConfig struct {
	Gameplay   Gameplay         `yaml:"gameplay"`
	Render     Render           `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Gameplay defines the simulation parameters.
type Gameplay struct {
	HitPoints     int     `yaml:"hit_points"`
	Speed         float64 `yaml:"speed"`           // px per second toward the center
	SpawnPeriodMs int     `yaml:"spawn_period_ms"` // time between spawn batches
	SpawnBatch    int     `yaml:"spawn_batch"`     // targets per batch
	InnerRadius   float64 `yaml:"inner_radius"`    // px, reaching it costs a hit point
	TickRate      int     `yaml:"tick_rate"`       // simulation ticks per second
}

// Render maps play-area pixels onto terminal cells.
type Render struct {
	CellWidth  int `yaml:"cell_width"`  // px per column
	CellHeight int `yaml:"cell_height"` // px per row
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate reports the first setting that would break the simulation.
func (c TypewarConfig) Validate() error {
	g := c.Gameplay
	switch {
	case g.HitPoints <= 0:
		return fmt.Errorf("%w: hit_points must be positive, got %d", ErrInvalid, g.HitPoints)
	case g.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalid, g.Speed)
	case g.SpawnPeriodMs <= 0:
		return fmt.Errorf("%w: spawn_period_ms must be positive, got %d", ErrInvalid, g.SpawnPeriodMs)
	case g.SpawnBatch <= 0:
		return fmt.Errorf("%w: spawn_batch must be positive, got %d", ErrInvalid, g.SpawnBatch)
	case g.InnerRadius < 0:
		return fmt.Errorf("%w: inner_radius must not be negative, got %g", ErrInvalid, g.InnerRadius)
	case g.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, g.TickRate)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %dx%d", ErrInvalid, c.Render.CellWidth, c.Render.CellHeight)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
	}
}
