package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var flagLimit int

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List saved grids",
	Long: `Display bookmarked grids, newest first.

A bookmark stores how a grid was generated (size, density, seed, start and
goal), so replaying it rebuilds exactly the same walls. Press m in the
visualizer to bookmark the grid on screen.

Examples:
  pathfinder bookmarks
  pathfinder bookmarks rm 25x25-42
  pathfinder bookmarks browse
  pathfinder run --bookmark 25x25-42`,
	Args: cobra.NoArgs,
	Run:  runBookmarks,
}

var bookmarksRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a bookmark",
	Args:  cobra.ExactArgs(1),
	Run:   runBookmarksRm,
}

var bookmarksBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a bookmark interactively and run it",
	Args:  cobra.NoArgs,
	Run:   runBookmarksBrowse,
}

func init() {
	bookmarksCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum bookmarks to list")
	bookmarksCmd.AddCommand(bookmarksRmCmd)
	bookmarksCmd.AddCommand(bookmarksBrowseCmd)
}

// openStore opens the bookmarks database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening bookmarks database: %v", err)
	}
	return store
}

func runBookmarks(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.Bookmarks(flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving bookmarks: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No bookmarks yet.")
		fmt.Println()
		fmt.Println("Press m in 'pathfinder run' to bookmark the grid on screen.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, b := range entries {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %-20s  %s\n", maxNameLen, "Name", "Size", "Density", "Seed", "Saved")
	fmt.Printf("  %-*s  %-7s  %-7s  %-20s  %s\n", maxNameLen, "----", "----", "-------", "----", "-----")
	for _, b := range entries {
		fmt.Printf("  %-*s  %-7s  %-7s  %-20d  %s\n",
			maxNameLen, b.Name,
			fmt.Sprintf("%dx%d", b.Cols, b.Rows),
			fmt.Sprintf("%.0f%%", b.Probability*100),
			b.Seed,
			b.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Println("Run 'pathfinder run --bookmark <name>' to replay one.")
}

func runBookmarksRm(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	deleted, err := store.DeleteBookmark(args[0])
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	if !deleted {
		store.Close()
		fail("no bookmark named %q", args[0])
	}
	fmt.Printf("Deleted %s\n", args[0])
}

func runBookmarksBrowse(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	selected, err := tui.RunBookmarks(store, width, height)
	store.Close()
	if err != nil {
		fail("%v", err)
	}
	if selected == nil {
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	useBookmark(&cfg, *selected)
	if err := startVisualizer(cfg); err != nil {
		fail("%v", err)
	}
}
