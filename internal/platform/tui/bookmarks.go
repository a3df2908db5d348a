package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// maxBookmarks is the number of bookmarks loaded into the browser.
const maxBookmarks = 200

// BookmarksKeyMap defines the key bindings for the bookmark browser.
type BookmarksKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BookmarksKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BookmarksKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Delete, k.Quit},
	}
}

// DefaultBookmarksKeyMap returns default key bindings.
func DefaultBookmarksKeyMap() BookmarksKeyMap {
	return BookmarksKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BookmarksModel is the Bubble Tea model for the bookmark browser.
type BookmarksModel struct {
	store     *storage.Store
	bookmarks []storage.Bookmark
	table     table.Model
	help      help.Model
	keys      BookmarksKeyMap
	width     int
	height    int
	selected  *storage.Bookmark
	status    string
	quitting  bool
}

// NewBookmarksModel creates a browser over the bookmarks in store.
func NewBookmarksModel(store *storage.Store, width, height int) BookmarksModel {
	m := BookmarksModel{
		store:  store,
		keys:   DefaultBookmarksKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadBookmarks()
	return m
}

// createTable creates a new table sized to the window.
func (m *BookmarksModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 8},
		{Title: "Density", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Saved", Width: 13},
	}

	// Give spare width to the name column.
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 4 - used; spare > 0 {
		columns[0].Width += min(spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadBookmarks reads bookmarks from the store into the table.
func (m *BookmarksModel) loadBookmarks() {
	m.bookmarks = nil
	if m.store != nil {
		bookmarks, err := m.store.Bookmarks(maxBookmarks)
		if err != nil {
			m.status = err.Error()
		} else {
			m.bookmarks = bookmarks
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current bookmarks.
func (m *BookmarksModel) updateTableRows() {
	rows := make([]table.Row, len(m.bookmarks))
	for i, b := range m.bookmarks {
		rows[i] = table.Row{
			b.Name,
			fmt.Sprintf("%dx%d", b.Cols, b.Rows),
			fmt.Sprintf("%.0f%%", b.Probability*100),
			fmt.Sprintf("%d", b.Seed),
			b.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the bookmark browser.
func (m BookmarksModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the bookmark browser.
func (m BookmarksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.bookmarks) {
				b := m.bookmarks[i]
				m.selected = &b
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteSelected removes the bookmark under the cursor.
func (m *BookmarksModel) deleteSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.bookmarks) {
		return
	}
	name := m.bookmarks[i].Name
	if _, err := m.store.DeleteBookmark(name); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("deleted %s", name)
	m.loadBookmarks()
	if i >= len(m.bookmarks) && len(m.bookmarks) > 0 {
		m.table.SetCursor(len(m.bookmarks) - 1)
	}
}

// View renders the bookmark browser.
func (m BookmarksModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("BOOKMARKS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BookmarksModel) renderTableContent() string {
	if len(m.bookmarks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No bookmarks yet.\nPress m while a search runs to save its grid.")
	}
	return m.table.View()
}

// Selected returns the bookmark chosen with enter, or nil.
func (m BookmarksModel) Selected() *storage.Bookmark {
	return m.selected
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// RunBookmarks runs the bookmark browser.
// Returns the chosen bookmark, or nil if the user quit.
func RunBookmarks(store *storage.Store, width, height int) (*storage.Bookmark, error) {
	model := NewBookmarksModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(BookmarksModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
