package config

import (
	_ "embed"
)

//go:embed defaults/hexsnake.yaml
var defaultHexSnakeYAML []byte

// DefaultHexSnakeConfig returns the default hexsnake configuration.
func DefaultHexSnakeConfig() HexSnakeConfig {
	return HexSnakeConfig{
		Board: BoardConfig{
			Radius: 7,
		},
		Timing: TimingConfig{
			MoveEveryTicks: 7,
			FoodFlashTicks: 36,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
	}
}
