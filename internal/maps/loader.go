// Package maps loads and saves hand-made grids as YAML map files.
package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

// Map is a complete grid definition.
type Map struct {
	ID        string
	Name      string
	Cols      int
	Rows      int
	Start     pathfind.Position
	Goal      pathfind.Position
	Obstacles []pathfind.Position
	FilePath  string
}

// Grid builds the pathfinding grid for this map.
func (m Map) Grid() (*pathfind.Grid, error) {
	return pathfind.NewGrid(m.Cols, m.Rows, m.Start, m.Goal, m.Obstacles)
}

// Title returns the display name, falling back to the ID.
func (m Map) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. Returns maps sorted by ID.
func (l *Loader) LoadAll() ([]Map, error) {
	var maps []Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		m, err := LoadFile(path)
		if err != nil {
			return nil
		}
		maps = append(maps, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("maps: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})
	return maps, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}
	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("maps: map not found: %s", id)
}

// LoadFile loads a single map file. A missing ID defaults to the file name.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("maps: reading file %s: %w", path, err)
	}
	if !isSupportedExtension(filepath.Ext(path)) {
		return Map{}, fmt.Errorf("maps: unsupported extension: %s", filepath.Ext(path))
	}

	m, err := Parse(data)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if m.ID == "" {
		m.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	m.FilePath = path
	return m, nil
}

// SaveFile writes grid as a map file, creating parent directories.
func SaveFile(path string, grid *pathfind.Grid, id, name string) error {
	data, err := Encode(grid, id, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("maps: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("maps: cannot write %s: %w", path, err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
