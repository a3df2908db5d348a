package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/maps"
)

var mapsCmd = &cobra.Command{
	Use:   "maps [dir]",
	Short: "List map files in a directory",
	Long: `Scan a directory (default ./maps) for YAML map files and list the valid ones.

A map file gives the grid size and either an obstacle list or an ASCII
layout:

  id: corridor
  name: Corridor
  layout: |
    S.#.....
    ..#.##..
    .....#.G

# is a wall, S the start, G the goal and * a start that is also the goal.

Press ctrl+s in the visualizer to save the grid on screen as a map file.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMaps,
}

func runMaps(_ *cobra.Command, args []string) {
	dir := "maps"
	if len(args) == 1 {
		dir = args[0]
	}

	all, err := maps.NewLoader(dir).LoadAll()
	if err != nil {
		fail("%v", err)
	}

	if len(all) == 0 {
		fmt.Printf("No map files in %s.\n", dir)
		return
	}

	maxIDLen := 2 // "ID" header
	for _, m := range all {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Walls", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-----")
	for _, m := range all {
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxIDLen, m.ID, fmt.Sprintf("%dx%d", m.Cols, m.Rows), len(m.Obstacles), m.Title())
	}

	fmt.Println()
	fmt.Println("Run 'pathfinder run --map <file>' to use one.")
}
