package config

import (
	_ "embed"
)

//go:embed defaults/pathfinder.yaml
var defaultPathfinderYAML []byte

// DefaultConfig returns the built-in configuration: a 25×25 grid with 40% walls,
// stepping once per tick.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Cols:                25,
			Rows:                25,
			ObstacleProbability: 0.4,
		},
		Animation: AnimationConfig{
			StepsPerTick:    1,
			MaxStepsPerTick: 64,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPathfinderYAML
}
