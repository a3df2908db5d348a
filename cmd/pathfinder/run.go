package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Animate A* searches in the terminal",
	Long: `Generate a grid and animate the search, one expansion per tick.

Controls:
  Space/R    - New grid (same grid again for --map)
  P          - Pause
  N          - Single step while paused
  +/-        - More/fewer search steps per tick
  M          - Bookmark the current grid
  Ctrl+S     - Save the current grid as a YAML map file
  ?          - Full help
  Q/Ctrl+C   - Quit

Examples:
  pathfinder run
  pathfinder run --density dense --steps-per-tick 4
  pathfinder run --seed 42 --cols 60 --rows 30
  pathfinder run --bookmark 25x25-42`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func runRun(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagBookmark != "" {
		if err := applyBookmark(&cfg, flagBookmark); err != nil {
			fail("%v", err)
		}
	}

	if err := startVisualizer(cfg); err != nil {
		fail("%v", err)
	}
}

// startVisualizer runs the interactive visualizer for cfg until the user quits.
func startVisualizer(cfg config.Config) error {
	logger := newLogger("pathfinder")

	// Run events would corrupt the alt screen, so the visualizer logs nowhere.
	quiet := newLogger("pathfinder")
	quiet.SetOutput(io.Discard)

	viz, err := newVisualizer(cfg, quiet)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     runSeed(cfg),
	}
	logger.Debug("starting visualizer", "seed", rc.Seed, "width", width, "height", height)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open bookmarks database", "error", err)
		// Continue without storage - bookmarking is disabled
	}

	runErr := tui.Run(viz, store, rc)

	if store != nil {
		store.Close()
	}
	return runErr
}
