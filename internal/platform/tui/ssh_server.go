package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/pathviz"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// shutdownGrace bounds how long Shutdown waits for open sessions.
const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // empty = ~/.pathfinder/host_key, generated on first start
	DBPath      string        // bookmarks database shared by all sessions
	IdleTimeout time.Duration // idle sessions are closed after this long
	TickRate    int           // animation ticks per second for every session

	// Pathfinder is the grid and animation config each session starts from.
	Pathfinder config.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.pathfinder/bookmarks.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
		Pathfinder:  config.DefaultConfig(),
	}
}

// SSHServer serves the visualizer over SSH. Every session gets its own
// Visualizer and search; only the bookmark store is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pathfinder-ssh",
		})
	}

	keyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}

	// Sessions can still watch searches without bookmarks.
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("bookmarks disabled", "db", cfg.DBPath, "error", err)
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.sessionModel),
			activeterm.Middleware(),
			srv.logSessions,
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// resolveHostKeyPath picks the host key location and makes sure its
// directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".pathfinder", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// sessionModel builds the Bubble Tea model for one session, sized to its PTY.
// activeterm rejects sessions without a PTY before this runs.
func (s *SSHServer) sessionModel(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	viz := pathviz.New(s.config.Pathfinder,
		pathviz.WithLogger(s.logger.With("user", sess.User())))

	model := NewModel(viz, s.store, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// logSessions records when sessions open and close.
func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		logger.Info("session started")
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.config.Address)
		serveErr <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, ssh.ErrServerClosed) {
			s.closeStore()
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting sessions, waits for open ones up to a grace
// period and closes the bookmark store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
