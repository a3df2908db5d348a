// Package pathviz animates an A* search on a terminal screen buffer.
// The Visualizer owns one search run at a time and advances it a few steps
// per tick; the platform layer decides how often ticks happen.
package pathviz

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

// Layout constants.
const (
	cellWidth = 2 // Characters per grid cell
	hudHeight = 2 // Status line and separator
	footerH   = 1 // Status message under the board
)

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithGrid makes every run use grid instead of generating a layout.
func WithGrid(grid *pathfind.Grid, title string) Option {
	return func(v *Visualizer) {
		v.fixed = grid
		v.title = title
	}
}

// WithLogger sets the logger used for run events.
func WithLogger(logger *log.Logger) Option {
	return func(v *Visualizer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Visualizer drives and draws successive search runs.
type Visualizer struct {
	cfg    config.Config
	fixed  *pathfind.Grid
	title  string
	logger *log.Logger

	seedRng *rand.Rand // Seeds layouts after the first
	seed    int64      // Seed of the current layout
	spec    pathfind.Spec
	search  *pathfind.State
	err     error // Set when the current layout could not be built

	tick          uint64
	runs          int
	stepsPerTick  int
	paused        bool
	finishedTicks int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a visualizer for cfg. Call Reset before the first Step.
func New(cfg config.Config, opts ...Option) *Visualizer {
	v := &Visualizer{
		cfg:    cfg,
		title:  "A* Pathfinder",
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Reset starts over with a layout seeded by rc.Seed and adapts to the screen size.
func (v *Visualizer) Reset(rc core.RuntimeConfig) {
	v.seedRng = rand.New(rand.NewSource(rc.Seed))
	v.tick = 0
	v.runs = 0
	v.paused = false
	v.stepsPerTick = core.Clamp(v.cfg.Animation.StepsPerTick, 1, max(v.cfg.Animation.MaxStepsPerTick, 1))
	v.Resize(rc.ScreenW, rc.ScreenH)
	v.startRun(rc.Seed)
}

// Resize adapts to a new screen size without touching the run.
func (v *Visualizer) Resize(w, h int) {
	v.screenW = w
	v.screenH = h
	bw, bh := v.RequiredSize()
	v.tooSmall = w < bw || h < bh
}

// RequiredSize returns the smallest screen that fits the board, HUD and footer.
func (v *Visualizer) RequiredSize() (w, h int) {
	cols, rows := v.gridSize()
	w = max(cols*cellWidth+2, 40)
	h = hudHeight + rows + 2 + footerH
	return w, h
}

func (v *Visualizer) gridSize() (cols, rows int) {
	if v.fixed != nil {
		return v.fixed.Cols(), v.fixed.Rows()
	}
	return v.cfg.Grid.Cols, v.cfg.Grid.Rows
}

// startRun builds the layout for seed and initializes a fresh search on it.
func (v *Visualizer) startRun(seed int64) {
	v.seed = seed
	v.finishedTicks = 0
	v.runs++
	v.search = nil
	v.err = nil

	grid := v.fixed
	if grid == nil {
		v.spec = v.cfg.Spec()
		v.spec.Seed = seed
		g, err := pathfind.Generate(v.spec)
		if err != nil {
			v.err = err
			v.logger.Error("cannot generate grid", "seed", seed, "error", err)
			return
		}
		grid = g
	}

	search, err := pathfind.Initialize(grid)
	if err != nil {
		v.err = err
		v.logger.Error("cannot start search", "error", err)
		return
	}
	v.search = search
	v.logger.Debug("run started", "run", v.runs, "seed", seed,
		"cols", grid.Cols(), "rows", grid.Rows(), "walls", grid.ObstacleCount())
}

// restart begins a new run: a fresh layout for generated grids, the same
// layout again for a fixed grid.
func (v *Visualizer) restart() {
	v.startRun(v.seedRng.Int63())
}

// Step advances the visualizer by one tick.
func (v *Visualizer) Step(input core.InputFrame) core.StepResult {
	v.tick++

	if input.Has(core.ActionRestart) {
		v.restart()
		return core.StepResult{State: v.State()}
	}

	if input.Has(core.ActionPause) {
		v.paused = !v.paused
	}
	if input.Has(core.ActionFaster) {
		v.stepsPerTick = core.Clamp(v.stepsPerTick*2, 1, max(v.cfg.Animation.MaxStepsPerTick, 1))
	}
	if input.Has(core.ActionSlower) {
		v.stepsPerTick = max(v.stepsPerTick/2, 1)
	}

	if v.search == nil || v.tooSmall {
		return core.StepResult{State: v.State()}
	}

	if v.search.Status().Done() {
		if n := v.cfg.Animation.AutoRestartTicks; n > 0 {
			v.finishedTicks++
			if v.finishedTicks >= n {
				v.restart()
			}
		}
		return core.StepResult{State: v.State()}
	}

	switch {
	case v.paused && input.Has(core.ActionStep):
		v.advance(1)
	case !v.paused:
		v.advance(v.stepsPerTick)
	}

	return core.StepResult{State: v.State()}
}

// advance calls Step on the search up to n times, stopping at a terminal status.
func (v *Visualizer) advance(n int) {
	for range n {
		if v.search.Status().Done() {
			return
		}
		res, err := v.search.Step()
		if err != nil {
			v.logger.Error("search step failed", "error", err)
			return
		}
		if res.Status.Done() {
			v.logFinish(res)
		}
	}
}

func (v *Visualizer) logFinish(res pathfind.StepResult) {
	switch res.Status {
	case pathfind.StatusSucceeded:
		v.logger.Info("path found", "seed", v.seed, "steps", res.Steps,
			"length", len(v.search.PathPositions()), "cost", v.search.PathCost())
	case pathfind.StatusFailed:
		v.logger.Info("no path found", "seed", v.seed, "steps", res.Steps,
			"explored", v.search.ExploredLen())
	}
}

// Solve runs the current search to completion without animation.
func (v *Visualizer) Solve(ctx context.Context) (pathfind.StepResult, error) {
	if v.search == nil {
		return pathfind.StepResult{}, v.err
	}
	wasDone := v.search.Status().Done()
	res, err := v.search.Run(ctx)
	if err != nil {
		return res, err
	}
	if !wasDone {
		v.logFinish(res)
	}
	return res, nil
}

// State returns the current run state.
func (v *Visualizer) State() core.RunState {
	st := core.RunState{Paused: v.paused}
	if v.search != nil {
		st.Steps = v.search.Steps()
		st.Finished = v.search.Status().Done()
	}
	return st
}

// Search returns the current search, or nil if the layout could not be built.
func (v *Visualizer) Search() *pathfind.State { return v.search }

// Grid returns the grid of the current run, or nil.
func (v *Visualizer) Grid() *pathfind.Grid {
	if v.search == nil {
		return nil
	}
	return v.search.Grid()
}

// Seed returns the seed of the current layout.
func (v *Visualizer) Seed() int64 { return v.seed }

// Spec returns the recipe of the current layout. It reports false for fixed
// grids, which cannot be regenerated from a seed.
func (v *Visualizer) Spec() (pathfind.Spec, bool) {
	if v.fixed != nil || v.search == nil {
		return pathfind.Spec{}, false
	}
	return v.spec, true
}

// Title returns the display name of the visualizer.
func (v *Visualizer) Title() string { return v.title }

// StepsPerTick returns the current animation speed.
func (v *Visualizer) StepsPerTick() int { return v.stepsPerTick }

// Err returns the error that prevented the current run from starting.
func (v *Visualizer) Err() error { return v.err }
