// Package config provides YAML-based configuration loading and obstacle
// density presets for the pathfinder.
package config

import "github.com/vovakirdan/tui-pathfinder/internal/pathfind"

// Config contains all configuration for a pathfinder run.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
}

// GridConfig defines the generated grid.
type GridConfig struct {
	Cols                int          `yaml:"cols"`
	Rows                int          `yaml:"rows"`
	ObstacleProbability float64      `yaml:"obstacle_probability"`
	Start               *PointConfig `yaml:"start,omitempty"` // nil = top-left corner
	Goal                *PointConfig `yaml:"goal,omitempty"`  // nil = bottom-right corner
	Seed                int64        `yaml:"seed"`            // 0 = time based
}

// PointConfig is a grid coordinate in YAML form.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// AnimationConfig defines how fast the search is driven.
type AnimationConfig struct {
	StepsPerTick     int `yaml:"steps_per_tick"`     // Search steps per animation tick
	MaxStepsPerTick  int `yaml:"max_steps_per_tick"` // Upper bound for speed-up
	AutoRestartTicks int `yaml:"auto_restart_ticks"` // Ticks to hold a finished run before a new layout, 0 = off
}

// Spec converts the grid section into a pathfind.Spec, filling in the default
// corners when start or goal are not set.
func (c Config) Spec() pathfind.Spec {
	spec := pathfind.DefaultSpec(c.Grid.Cols, c.Grid.Rows)
	spec.ObstacleProbability = c.Grid.ObstacleProbability
	spec.Seed = c.Grid.Seed
	if c.Grid.Start != nil {
		spec.Start = pathfind.P(c.Grid.Start.X, c.Grid.Start.Y)
	}
	if c.Grid.Goal != nil {
		spec.Goal = pathfind.P(c.Grid.Goal.X, c.Grid.Goal.Y)
	}
	return spec
}

// normalize repairs animation values that would stall the driver.
func (c *Config) normalize() {
	if c.Animation.StepsPerTick < 1 {
		c.Animation.StepsPerTick = 1
	}
	if c.Animation.MaxStepsPerTick < c.Animation.StepsPerTick {
		c.Animation.MaxStepsPerTick = c.Animation.StepsPerTick
	}
	if c.Animation.AutoRestartTicks < 0 {
		c.Animation.AutoRestartTicks = 0
	}
}
