package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexSnake loads the hexsnake configuration.
// Search order: customPath -> ~/.hexsnake/configs/hexsnake.yaml ->
// ./configs/hexsnake.yaml -> embedded default.
func LoadHexSnake(customPath string) (HexSnakeConfig, error) {
	var cfg HexSnakeConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hexsnake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/hexsnake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexSnakeYAML, &cfg); err != nil {
		return DefaultHexSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// sanitize replaces unusable values with defaults so a sparse or
// hand-edited config file cannot stall the simulation.
func sanitize(cfg HexSnakeConfig) HexSnakeConfig {
	def := DefaultHexSnakeConfig()
	if cfg.Board.Radius < 2 {
		cfg.Board.Radius = def.Board.Radius
	}
	if cfg.Timing.MoveEveryTicks < 1 {
		cfg.Timing.MoveEveryTicks = def.Timing.MoveEveryTicks
	}
	if cfg.Timing.FoodFlashTicks < 1 {
		cfg.Timing.FoodFlashTicks = def.Timing.FoodFlashTicks
	}
	if cfg.Scoring.FoodPoints < 1 {
		cfg.Scoring.FoodPoints = def.Scoring.FoodPoints
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexsnake", "configs", filename)
}
