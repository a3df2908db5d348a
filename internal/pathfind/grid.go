package pathfind

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultObstacleProbability is the chance that a generated cell is a wall.
const DefaultObstacleProbability = 0.4

// neighborOffsets lists the 8-connected moves in a fixed order so expansion
// is deterministic: N, NE, E, SE, S, SW, W, NW.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Spec describes a randomly generated grid.
type Spec struct {
	Cols                int
	Rows                int
	ObstacleProbability float64
	Start               Position
	Goal                Position
	Seed                int64
}

// DefaultSpec returns a spec for a cols×rows grid with the start in the
// top-left corner, the goal in the bottom-right corner and the default
// obstacle probability.
func DefaultSpec(cols, rows int) Spec {
	return Spec{
		Cols:                cols,
		Rows:                rows,
		ObstacleProbability: DefaultObstacleProbability,
		Start:               P(0, 0),
		Goal:                P(cols-1, rows-1),
	}
}

// Validate checks dimensions, probability and start/goal bounds.
func (s Spec) Validate() error {
	if s.Cols < 1 || s.Rows < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfiguration, s.Cols, s.Rows)
	}
	if math.IsNaN(s.ObstacleProbability) || s.ObstacleProbability < 0 || s.ObstacleProbability > 1 {
		return fmt.Errorf("%w: obstacle probability %v outside [0,1]", ErrInvalidConfiguration, s.ObstacleProbability)
	}
	return checkEndpoints(s.Cols, s.Rows, s.Start, s.Goal)
}

// Grid is the immutable search space for one run.
type Grid struct {
	cols      int
	rows      int
	start     Position
	goal      Position
	obstacles map[Position]struct{}
}

// Generate builds a grid from spec. Every in-bounds cell except start and goal
// becomes an obstacle independently with spec.ObstacleProbability. Cells are
// visited row by row and each draws exactly one number from a source seeded
// with spec.Seed, so for a fixed seed a higher probability only ever adds walls.
func Generate(spec Spec) (*Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	obstacles := make(map[Position]struct{})
	for y := 0; y < spec.Rows; y++ {
		for x := 0; x < spec.Cols; x++ {
			p := P(x, y)
			if p == spec.Start || p == spec.Goal {
				continue
			}
			if rng.Float64() < spec.ObstacleProbability {
				obstacles[p] = struct{}{}
			}
		}
	}

	return &Grid{
		cols:      spec.Cols,
		rows:      spec.Rows,
		start:     spec.Start,
		goal:      spec.Goal,
		obstacles: obstacles,
	}, nil
}

// NewGrid builds a grid from an explicit obstacle list.
// Obstacles outside the grid are ignored; an obstacle on start or goal is an error.
func NewGrid(cols, rows int, start, goal Position, obstacles []Position) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfiguration, cols, rows)
	}
	if err := checkEndpoints(cols, rows, start, goal); err != nil {
		return nil, err
	}

	g := &Grid{
		cols:      cols,
		rows:      rows,
		start:     start,
		goal:      goal,
		obstacles: make(map[Position]struct{}, len(obstacles)),
	}
	for _, p := range obstacles {
		if !g.Contains(p) {
			continue
		}
		switch p {
		case start:
			return nil, fmt.Errorf("%w: start %v is an obstacle", ErrInvalidConfiguration, p)
		case goal:
			return nil, fmt.Errorf("%w: goal %v is an obstacle", ErrInvalidConfiguration, p)
		}
		g.obstacles[p] = struct{}{}
	}
	return g, nil
}

func checkEndpoints(cols, rows int, start, goal Position) error {
	inBounds := func(p Position) bool {
		return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
	}
	if !inBounds(start) {
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidConfiguration, start, cols, rows)
	}
	if !inBounds(goal) {
		return fmt.Errorf("%w: goal %v outside %dx%d grid", ErrInvalidConfiguration, goal, cols, rows)
	}
	return nil
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// Goal returns the goal position.
func (g *Grid) Goal() Position { return g.goal }

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// IsObstacle reports whether p is a wall. Out-of-bounds positions are not obstacles.
func (g *Grid) IsObstacle(p Position) bool {
	_, ok := g.obstacles[p]
	return ok
}

// Neighbors returns the in-bounds 8-connected neighbors of p.
// Obstacles are included; filtering them is the caller's concern.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d[0], d[1])
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// ObstacleCount returns the number of walls.
func (g *Grid) ObstacleCount() int {
	return len(g.obstacles)
}

// ObstaclePositions returns all walls in row-major order.
func (g *Grid) ObstaclePositions() []Position {
	out := make([]Position, 0, len(g.obstacles))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.IsObstacle(P(x, y)) {
				out = append(out, P(x, y))
			}
		}
	}
	return out
}
