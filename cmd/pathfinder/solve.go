package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
)

var flagNoColor bool

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run one search headless and print the result",
	Long: `Generate a grid (or load --map / --bookmark), run the search to completion
and print the final board with statistics. Colors are used when stdout is a
terminal.

The exit status is 0 whether or not a path exists; "no path" is a result,
not an error.

Examples:
  pathfinder solve --seed 42
  pathfinder solve --density sparse --cols 60 --rows 20
  pathfinder solve --map ./maps/corridor.yaml --no-color`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Print plain text even on a terminal")
}

func runSolve(_ *cobra.Command, _ []string) {
	logger := newLogger("pathfinder")

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagBookmark != "" {
		if err := applyBookmark(&cfg, flagBookmark); err != nil {
			fail("%v", err)
		}
	}

	viz, err := newVisualizer(cfg, logger)
	if err != nil {
		fail("%v", err)
	}
	seed := runSeed(cfg)
	viz.Reset(core.RuntimeConfig{Seed: seed})
	if viz.Err() != nil {
		fail("%v", viz.Err())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := viz.Solve(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(130)
	}
	if err != nil {
		fail("%v", err)
	}

	w, h := viz.RequiredSize()
	screen := core.NewScreen(w, h)
	viz.Resize(w, h)
	viz.Render(screen)

	if !flagNoColor && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}

	printStats(viz.Search(), res, seed)
}

// printStats writes the run summary under the board.
func printStats(s *pathfind.State, res pathfind.StepResult, seed int64) {
	g := s.Grid()
	fmt.Println()
	fmt.Printf("  %-12s %dx%d, %d walls\n", "grid", g.Cols(), g.Rows(), g.ObstacleCount())
	if flagMap == "" {
		fmt.Printf("  %-12s %d\n", "seed", seed)
	}
	fmt.Printf("  %-12s %s\n", "status", res.Status)
	fmt.Printf("  %-12s %d\n", "steps", res.Steps)
	fmt.Printf("  %-12s %d\n", "expansions", res.Expansions)
	fmt.Printf("  %-12s %d\n", "explored", s.ExploredLen())
	fmt.Printf("  %-12s %d\n", "frontier", s.FrontierLen())
	if res.Status == pathfind.StatusSucceeded {
		fmt.Printf("  %-12s %d cells\n", "path", len(s.PathPositions()))
		fmt.Printf("  %-12s %.3f\n", "cost", s.PathCost())
	}
}
