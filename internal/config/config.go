// Package config provides YAML-based configuration loading for the
// hexsnake game. Board radius, movement cadence, and scoring are fixed
// per session: they are read once at game start and never renegotiated
// at runtime.
package config

// HexSnakeConfig contains all configuration for the hex snake game.
type HexSnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the hexagonal board geometry.
type BoardConfig struct {
	// Radius is the board radius R: cells satisfy
	// |q| <= R, |r| <= R, |q+r| <= R.
	Radius int `yaml:"radius"`
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	// MoveEveryTicks is how many platform ticks pass between snake
	// moves. At 60 ticks/s the default of 7 gives roughly one move
	// every 120 ms.
	MoveEveryTicks int `yaml:"move_every_ticks"`

	// FoodFlashTicks is how long the food-eaten flash stays visible.
	FoodFlashTicks int `yaml:"food_flash_ticks"`
}

// ScoringConfig defines scoring parameters.
type ScoringConfig struct {
	// FoodPoints is awarded per food eaten.
	FoodPoints int `yaml:"food_points"`
}
