package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pathfinder SSH server",
	Long: `Start an SSH server that shows the visualizer to every connected user.

Each SSH connection gets its own visualizer with its own grids. Bookmarks
are stored per-server (all users share the same database).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pathfinder/host_key

Examples:
  pathfinder serve                           # Listen on :23234 with auto-generated key
  pathfinder serve --ssh :2222               # Listen on port 2222
  pathfinder serve --host-key ./my_host_key  # Use specific host key
  pathfinder serve --density sparse          # Grid options apply to every session

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagMap != "" {
		fail("--map is not supported by serve")
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagBookmark != "" {
		if err := applyBookmark(&cfg, flagBookmark); err != nil {
			fail("%v", err)
		}
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.DBPath = flagDBPath
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.TickRate = flagFPS
	serverCfg.Pathfinder = cfg

	server, err := tui.NewSSHServer(serverCfg, newLogger("pathfinder-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting pathfinder SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
