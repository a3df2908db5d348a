package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/maps"
	"github.com/vovakirdan/tui-pathfinder/internal/pathviz"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// noticeTicks is how long a notice replaces the help bar.
const noticeTicks = 180

// Model is the Bubble Tea model driving a visualizer.
type Model struct {
	viz        *pathviz.Visualizer
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	runState   core.RunState
	exportDir  string
	notice     string
	noticeLeft int
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given visualizer.
// store may be nil, in which case bookmarking is disabled.
func NewModel(viz *pathviz.Visualizer, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		viz:        viz,
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		exportDir:  defaultExportDir(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	m.config.ScreenH = m.screenHeight()
	return m
}

// WithExportDir returns a copy of the model that saves maps to dir.
func (m Model) WithExportDir(dir string) Model {
	m.exportDir = dir
	return m
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "maps"
	}
	return filepath.Join(home, ".pathfinder", "maps")
}

// screenHeight is the window height minus the help area.
func (m Model) screenHeight() int {
	lines := 1
	if m.help.ShowAll {
		lines = 4
	}
	return max(m.height-lines, 0)
}

// Init initializes the model and starts the first run.
func (m Model) Init() tea.Cmd {
	m.viz.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Export):
		m.exportMap()
		return m, nil
	case key.Matches(msg, m.keys.Bookmark):
		m.bookmark()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize lays the visualizer out for a new window size. The current
// run is kept.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.config.ScreenW = width
	m.config.ScreenH = m.screenHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.viz.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.viz.Step(m.inputFrame)
	m.runState = result.State
	m.inputFrame.Clear()

	if m.noticeLeft > 0 {
		m.noticeLeft--
		if m.noticeLeft == 0 {
			m.notice = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// setNotice shows msg in place of the help bar for a while.
func (m *Model) setNotice(format string, args ...any) {
	m.notice = fmt.Sprintf(format, args...)
	m.noticeLeft = noticeTicks
}

// exportMap saves the current grid as a YAML map file.
func (m *Model) exportMap() {
	grid := m.viz.Grid()
	if grid == nil {
		m.setNotice("nothing to save")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	id := fmt.Sprintf("grid_%s", timestamp)
	path := filepath.Join(m.exportDir, id+".yaml")
	if err := maps.SaveFile(path, grid, id, m.viz.Title()); err != nil {
		m.setNotice("save failed: %v", err)
		return
	}
	m.setNotice("saved %s", path)
}

// bookmark stores the recipe of the current grid.
func (m *Model) bookmark() {
	if m.store == nil {
		m.setNotice("bookmarks unavailable: no database")
		return
	}
	spec, ok := m.viz.Spec()
	if !ok {
		m.setNotice("map files cannot be bookmarked")
		return
	}

	name := fmt.Sprintf("%dx%d-%d", spec.Cols, spec.Rows, spec.Seed)
	if _, err := m.store.SaveBookmark(storage.BookmarkFromSpec(name, spec)); err != nil {
		m.setNotice("bookmark failed: %v", err)
		return
	}
	m.setNotice("bookmarked %s", name)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.viz.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.notice != "" && !m.help.ShowAll {
		footer = noticeStyle.Render(m.notice)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// RunState returns the state reported by the last tick.
func (m Model) RunState() core.RunState {
	return m.runState
}

// Notice returns the message currently shown instead of the help bar.
func (m Model) Notice() string {
	return m.notice
}

// Run starts the Bubble Tea program with the given visualizer.
func Run(viz *pathviz.Visualizer, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(viz, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
