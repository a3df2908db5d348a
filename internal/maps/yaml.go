package maps

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
	"gopkg.in/yaml.v3"
)

// Layout characters.
const (
	layoutOpen  = '.'
	layoutWall  = '#'
	layoutStart = 'S'
	layoutGoal  = 'G'
	layoutBoth  = '*' // start and goal on the same cell
)

// YAMLMap represents the YAML structure for a map file.
// Either Obstacles or Layout describes the walls; Layout wins when both are set.
// Layout cells are '.' open, '#' wall, 'S' start, 'G' goal and '*' for a
// start that is also the goal.
type YAMLMap struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name,omitempty"`
	Size      YAMLSize    `yaml:"size,omitempty"`
	Start     *YAMLPoint  `yaml:"start,omitempty"`
	Goal      *YAMLPoint  `yaml:"goal,omitempty"`
	Obstacles []YAMLPoint `yaml:"obstacles,omitempty"`
	Layout    string      `yaml:"layout,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPoint represents a single cell in YAML format.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p YAMLPoint) pos() pathfind.Position { return pathfind.P(p.X, p.Y) }

// Parse parses a YAML map file. The result is validated by building its grid.
func Parse(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("maps: yaml unmarshal: %w", err)
	}

	m := Map{
		ID:   ym.ID,
		Name: ym.Name,
		Cols: ym.Size.W,
		Rows: ym.Size.H,
	}

	var layoutStartPos, layoutGoalPos *pathfind.Position
	if strings.TrimSpace(ym.Layout) != "" {
		rows := layoutRows(ym.Layout)
		if m.Rows == 0 {
			m.Rows = len(rows)
		}
		if m.Cols == 0 {
			m.Cols = len([]rune(rows[0]))
		}
		if len(rows) != m.Rows {
			return Map{}, fmt.Errorf("maps: layout has %d rows, size says %d", len(rows), m.Rows)
		}
		for y, row := range rows {
			runes := []rune(row)
			if len(runes) != m.Cols {
				return Map{}, fmt.Errorf("maps: layout row %d has %d cells, expected %d", y, len(runes), m.Cols)
			}
			for x, r := range runes {
				p := pathfind.P(x, y)
				switch r {
				case layoutOpen:
				case layoutWall:
					m.Obstacles = append(m.Obstacles, p)
				case layoutStart, layoutGoal, layoutBoth:
					if (r != layoutGoal && layoutStartPos != nil) || (r != layoutStart && layoutGoalPos != nil) {
						return Map{}, fmt.Errorf("maps: layout row %d: start or goal marked twice at %v", y, p)
					}
					if r != layoutGoal {
						layoutStartPos = &p
					}
					if r != layoutStart {
						layoutGoalPos = &p
					}
				default:
					return Map{}, fmt.Errorf("maps: layout row %d: unknown cell %q", y, r)
				}
			}
		}
	} else {
		for _, o := range ym.Obstacles {
			m.Obstacles = append(m.Obstacles, o.pos())
		}
	}

	m.Start = pathfind.P(0, 0)
	m.Goal = pathfind.P(m.Cols-1, m.Rows-1)
	switch {
	case layoutStartPos != nil:
		m.Start = *layoutStartPos
	case ym.Start != nil:
		m.Start = ym.Start.pos()
	}
	switch {
	case layoutGoalPos != nil:
		m.Goal = *layoutGoalPos
	case ym.Goal != nil:
		m.Goal = ym.Goal.pos()
	}

	if _, err := m.Grid(); err != nil {
		return Map{}, fmt.Errorf("maps: %w", err)
	}
	return m, nil
}

// Encode renders a grid as a YAML map file using the layout form.
func Encode(grid *pathfind.Grid, id, name string) ([]byte, error) {
	if grid == nil {
		return nil, fmt.Errorf("maps: nil grid")
	}

	var sb strings.Builder
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			p := pathfind.P(x, y)
			switch {
			case p == grid.Start() && p == grid.Goal():
				sb.WriteRune(layoutBoth)
			case p == grid.Start():
				sb.WriteRune(layoutStart)
			case p == grid.Goal():
				sb.WriteRune(layoutGoal)
			case grid.IsObstacle(p):
				sb.WriteRune(layoutWall)
			default:
				sb.WriteRune(layoutOpen)
			}
		}
		sb.WriteByte('\n')
	}

	ym := YAMLMap{
		ID:     id,
		Name:   name,
		Size:   YAMLSize{W: grid.Cols(), H: grid.Rows()},
		Layout: sb.String(),
	}
	data, err := yaml.Marshal(&ym)
	if err != nil {
		return nil, fmt.Errorf("maps: yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// layoutRows splits a layout block into rows, dropping blank lines and
// surrounding whitespace.
func layoutRows(layout string) []string {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
