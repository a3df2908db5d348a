// pathfinder animates an A* search on a randomly generated grid in the terminal.
//
// Usage:
//
//	pathfinder run               - Animate searches in the terminal
//	pathfinder solve             - Run one search headless and print the result
//	pathfinder serve             - Start SSH server for remote viewing
//	pathfinder bookmarks         - List, delete or browse saved grids
//	pathfinder maps [dir]        - List map files in a directory
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for a reproducible first layout
//	--db <path>           - Set database path (default: ~/.pathfinder/bookmarks.db)
//	--config <path>       - Use a specific config file
//	--density <preset>    - Obstacle density: empty, sparse, normal, dense
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagVerbose  bool
	flagCols     int
	flagRows     int
	flagDensity  string
	flagProb     float64
	flagSpeed    int
	flagMap      string
	flagBookmark string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Watch A* find its way through a grid",
	Long: `pathfinder generates a grid with random walls and animates an A* search
from the top-left corner to the bottom-right corner, one expansion at a time.

Explored cells are red, the frontier is green and the final path is blue.

Available commands:
  run        - Animate searches in the terminal (default)
  solve      - Run one search headless and print the result
  serve      - Start SSH server for remote viewing
  bookmarks  - List, delete or browse saved grids
  maps       - List map files in a directory

Examples:
  pathfinder
  pathfinder run --density sparse --cols 40 --rows 20
  pathfinder solve --seed 42
  pathfinder run --map ./maps/corridor.yaml
  pathfinder serve --ssh :2222`,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (runRun -> loadConfig -> rootCmd).
	rootCmd.Run = runRun

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for the first layout (0 = config or time based)")
	pf.StringVar(&flagDBPath, "db", "~/.pathfinder/bookmarks.db", "Path to bookmarks database")
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	pf.IntVar(&flagCols, "cols", 0, "Grid columns (overrides config)")
	pf.IntVar(&flagRows, "rows", 0, "Grid rows (overrides config)")
	pf.StringVar(&flagDensity, "density", "", "Obstacle density preset: empty, sparse, normal, dense")
	pf.Float64Var(&flagProb, "probability", 0, "Obstacle probability in [0,1] (overrides --density)")
	pf.IntVar(&flagSpeed, "steps-per-tick", 0, "Search steps per tick (overrides config)")
	pf.StringVar(&flagMap, "map", "", "Load the grid from a YAML map file")
	pf.StringVar(&flagBookmark, "bookmark", "", "Replay a bookmarked grid")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(mapsCmd)
}

// newLogger builds the CLI logger on stderr.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
