package config

import (
	_ "embed"
)

//go:embed defaults/typewar.yaml
var defaultTypewarYAML []byte

// DefaultTypewarConfig returns the default game configuration.
func DefaultTypewarConfig() TypewarConfig {
	return TypewarConfig{
		Gameplay: Gameplay{
			HitPoints:     100,
			Speed:         20.0,
			SpawnPeriodMs: 3000,
			SpawnBatch:    3,
			InnerRadius:   50,
			TickRate:      30,
		},
		Render: Render{
			CellWidth:  10,
			CellHeight: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
