package pathfind

import "math"

// Heuristic estimates the remaining cost from p to goal.
type Heuristic func(p, goal Position) float64

// Manhattan is the 4-direction estimate |dx| + |dy|. The engine uses it even
// though diagonal moves are allowed and cost √2, so it can overestimate.
func Manhattan(p, goal Position) float64 {
	return float64(abs(p.X-goal.X) + abs(p.Y-goal.Y))
}

// Chebyshev is the 8-direction estimate max(|dx|, |dy|).
// It is not used by Initialize.
func Chebyshev(p, goal Position) float64 {
	return math.Max(float64(abs(p.X-goal.X)), float64(abs(p.Y-goal.Y)))
}
