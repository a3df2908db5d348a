package pathfind

import (
	"context"
	"fmt"
)

// Status is the lifecycle stage of a search run.
// Failed means "no path exists", which is a normal outcome and not an error.
type Status int

const (
	StatusRunning Status = iota
	StatusSucceeded
	StatusFailed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Done reports whether the status is terminal.
func (s Status) Done() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// StepResult describes what a single Step did.
type StepResult struct {
	Status     Status
	Current    Position // Node selected this step
	Steps      int      // Step calls so far, including this one
	Expansions int      // Nodes whose neighbors have been processed
}

// State is the complete state of one search run. It is created by Initialize,
// advanced only by Step and discarded when a new run begins.
type State struct {
	grid       *Grid
	heuristic  Heuristic
	frontier   *Frontier
	explored   *Explored
	path       []Position
	goalNode   Node
	status     Status
	steps      int
	expansions int
}

// Initialize starts a new run on grid with the start node as the only
// frontier entry.
func Initialize(grid *Grid) (*State, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfiguration)
	}
	if err := checkEndpoints(grid.cols, grid.rows, grid.start, grid.goal); err != nil {
		return nil, err
	}
	if grid.IsObstacle(grid.start) || grid.IsObstacle(grid.goal) {
		return nil, fmt.Errorf("%w: start or goal is an obstacle", ErrInvalidConfiguration)
	}

	s := &State{
		grid:      grid,
		heuristic: Manhattan,
		frontier:  NewFrontier(),
		explored:  NewExplored(),
		status:    StatusRunning,
	}
	s.frontier.Push(newNode(grid.start, 0, s.heuristic(grid.start, grid.goal)))
	return s, nil
}

// Step performs one A* expansion: select the cheapest frontier node, finish
// if it is the goal, otherwise close it and relax its neighbors.
// Explored nodes are never reopened.
func (s *State) Step() (StepResult, error) {
	if s.status.Done() {
		return s.result(Position{}), fmt.Errorf("%w: status is %s", ErrInvalidState, s.status)
	}
	s.steps++

	current, ok := s.frontier.PopBest()
	if !ok {
		s.status = StatusFailed
		return s.result(Position{}), nil
	}

	if current.Pos == s.grid.goal {
		s.explored.Add(*current)
		s.goalNode = *current
		s.path = Reconstruct(s.explored, s.goalNode)
		s.status = StatusSucceeded
		return s.result(current.Pos), nil
	}

	s.explored.Add(*current)
	s.expansions++

	for _, n := range s.grid.Neighbors(current.Pos) {
		if s.grid.IsObstacle(n) || s.explored.Contains(n) {
			continue
		}
		tentativeG := current.G + Distance(current.Pos, n)
		if !s.frontier.Contains(n) {
			node := newNode(n, tentativeG, s.heuristic(n, s.grid.goal))
			node.Parent = current.Pos
			node.HasParent = true
			s.frontier.Push(node)
			continue
		}
		s.frontier.Relax(n, current.Pos, tentativeG)
	}

	if s.frontier.Len() == 0 {
		s.status = StatusFailed
	}
	return s.result(current.Pos), nil
}

// Run steps until the search finishes or ctx is cancelled.
func (s *State) Run(ctx context.Context) (StepResult, error) {
	res := s.result(Position{})
	for !s.status.Done() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var err error
		if res, err = s.Step(); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s *State) result(current Position) StepResult {
	return StepResult{
		Status:     s.status,
		Current:    current,
		Steps:      s.steps,
		Expansions: s.expansions,
	}
}

// Grid returns the grid being searched.
func (s *State) Grid() *Grid { return s.grid }

// Status returns the run status.
func (s *State) Status() Status { return s.status }

// Steps returns the number of Step calls that advanced the search.
func (s *State) Steps() int { return s.steps }

// Expansions returns the number of nodes whose neighbors were processed.
// The final goal selection is not an expansion.
func (s *State) Expansions() int { return s.expansions }

// FrontierLen returns the size of the open set.
func (s *State) FrontierLen() int { return s.frontier.Len() }

// ExploredLen returns the size of the closed set.
func (s *State) ExploredLen() int { return s.explored.Len() }

// FrontierPositions returns the open set in row-major order.
func (s *State) FrontierPositions() []Position { return s.frontier.Positions() }

// ExploredPositions returns the closed set in expansion order.
func (s *State) ExploredPositions() []Position { return s.explored.Positions() }

// ObstaclePositions returns the walls of the grid in row-major order.
func (s *State) ObstaclePositions() []Position { return s.grid.ObstaclePositions() }

// PathPositions returns the start→goal route, empty until the run succeeds.
func (s *State) PathPositions() []Position {
	out := make([]Position, len(s.path))
	copy(out, s.path)
	return out
}

// PathCost returns the accumulated cost of the found path, or 0 if there is none.
func (s *State) PathCost() float64 {
	if s.status != StatusSucceeded {
		return 0
	}
	return s.goalNode.G
}

// GoalNode returns the goal node once the run has succeeded.
func (s *State) GoalNode() (Node, bool) {
	return s.goalNode, s.status == StatusSucceeded
}

// Node returns a copy of the node stored for p in either set.
func (s *State) Node(p Position) (Node, bool) {
	if n, ok := s.explored.Get(p); ok {
		return n, true
	}
	if n, ok := s.frontier.Get(p); ok {
		return n, true
	}
	return Node{}, false
}

// Explored returns the closed set for path reconstruction.
func (s *State) Explored() *Explored { return s.explored }

// InFrontier reports whether p is in the open set.
func (s *State) InFrontier(p Position) bool { return s.frontier.Contains(p) }

// InExplored reports whether p is in the closed set.
func (s *State) InExplored(p Position) bool { return s.explored.Contains(p) }
