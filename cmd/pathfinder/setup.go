package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/maps"
	"github.com/vovakirdan/tui-pathfinder/internal/pathviz"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("cols") {
		cfg.Grid.Cols = flagCols
	}
	if pf.Changed("rows") {
		cfg.Grid.Rows = flagRows
	}
	if err := config.ApplyDensityPreset(&cfg, config.DensityPreset(flagDensity)); err != nil {
		return cfg, err
	}
	if pf.Changed("probability") {
		cfg.Grid.ObstacleProbability = flagProb
	}
	if pf.Changed("steps-per-tick") {
		cfg.Animation.StepsPerTick = flagSpeed
		cfg.Animation.MaxStepsPerTick = max(cfg.Animation.MaxStepsPerTick, flagSpeed)
	}
	if pf.Changed("seed") {
		cfg.Grid.Seed = flagSeed
	}

	if err := cfg.Spec().Validate(); err != nil && flagMap == "" && flagBookmark == "" {
		return cfg, err
	}
	return cfg, nil
}

// applyBookmark replaces the grid section of cfg with a stored recipe.
func applyBookmark(cfg *config.Config, name string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	b, err := store.BookmarkByName(name)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("no bookmark named %q", name)
	}
	useBookmark(cfg, *b)
	return nil
}

// useBookmark copies a bookmark recipe into cfg.
func useBookmark(cfg *config.Config, b storage.Bookmark) {
	cfg.Grid.Cols = b.Cols
	cfg.Grid.Rows = b.Rows
	cfg.Grid.ObstacleProbability = b.Probability
	cfg.Grid.Seed = b.Seed
	cfg.Grid.Start = &config.PointConfig{X: b.Start.X, Y: b.Start.Y}
	cfg.Grid.Goal = &config.PointConfig{X: b.Goal.X, Y: b.Goal.Y}
}

// newVisualizer builds a visualizer for cfg, loading --map when set.
func newVisualizer(cfg config.Config, logger *log.Logger) (*pathviz.Visualizer, error) {
	opts := []pathviz.Option{pathviz.WithLogger(logger)}
	if flagMap != "" {
		m, err := maps.LoadFile(flagMap)
		if err != nil {
			return nil, err
		}
		grid, err := m.Grid()
		if err != nil {
			return nil, err
		}
		opts = append(opts, pathviz.WithGrid(grid, m.Title()))
		logger.Debug("loaded map", "id", m.ID, "path", m.FilePath)
	}
	return pathviz.New(cfg, opts...), nil
}

// runSeed returns the seed for the first layout, picking a time-based one
// when the config leaves it at zero.
func runSeed(cfg config.Config) int64 {
	if cfg.Grid.Seed != 0 {
		return cfg.Grid.Seed
	}
	return time.Now().UnixNano()
}
