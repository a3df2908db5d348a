// Package pathfind implements an incremental A* search over a rectangular
// grid with obstacles. The search advances one node expansion per Step call
// so a driver (an animation loop, a test, a headless solver) controls the
// pace and can read frontier, explored set and path between calls.
//
// The package has no UI or I/O dependencies.
package pathfind

import (
	"fmt"
	"math"
)

// Position is a cell coordinate. X grows to the right, Y grows downward.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between two positions.
// Orthogonal neighbors are 1 apart, diagonal neighbors √2.
func Distance(a, b Position) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Adjacent reports whether b is one of the 8 neighbors of a.
func Adjacent(a, b Position) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
