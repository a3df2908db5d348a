package pathfind

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openGrid(t *testing.T, cols, rows int) *Grid {
	t.Helper()
	g, err := NewGrid(cols, rows, P(0, 0), P(cols-1, rows-1), nil)
	require.NoError(t, err)
	return g
}

func runToEnd(t *testing.T, s *State, limit int) StepResult {
	t.Helper()
	var res StepResult
	for i := 0; i < limit && !s.Status().Done(); i++ {
		var err error
		res, err = s.Step()
		require.NoError(t, err)
	}
	require.True(t, s.Status().Done(), "search did not finish within %d steps", limit)
	return res
}

func TestInitialize(t *testing.T) {
	g := openGrid(t, 4, 4)
	s, err := Initialize(g)
	require.NoError(t, err)

	assert.Equal(t, StatusRunning, s.Status())
	assert.Equal(t, []Position{P(0, 0)}, s.FrontierPositions())
	assert.Empty(t, s.ExploredPositions())
	assert.Empty(t, s.PathPositions())

	start, ok := s.Node(P(0, 0))
	require.True(t, ok)
	assert.Equal(t, 0.0, start.G)
	assert.Equal(t, 6.0, start.H)
	assert.False(t, start.HasParent)
}

func TestInitializeRejectsNilGrid(t *testing.T) {
	_, err := Initialize(nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestThreeByThreeTakesDiagonal(t *testing.T) {
	s, err := Initialize(openGrid(t, 3, 3))
	require.NoError(t, err)

	res := runToEnd(t, s, 5)
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.LessOrEqual(t, res.Steps, 5)
	assert.Equal(t, []Position{P(0, 0), P(1, 1), P(2, 2)}, s.PathPositions())
	assert.InDelta(t, 2*math.Sqrt2, s.PathCost(), 1e-9)
}

func TestTwoByOneNeedsOneExpansion(t *testing.T) {
	g, err := NewGrid(2, 1, P(0, 0), P(1, 0), nil)
	require.NoError(t, err)
	s, err := Initialize(g)
	require.NoError(t, err)

	res, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, res.Status)
	assert.Equal(t, 1, res.Expansions)

	res, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.Equal(t, 1, res.Expansions, "goal selection is not an expansion")
	assert.Equal(t, []Position{P(0, 0), P(1, 0)}, s.PathPositions())
}

func TestStartEqualsGoal(t *testing.T) {
	g, err := NewGrid(3, 3, P(1, 1), P(1, 1), nil)
	require.NoError(t, err)
	s, err := Initialize(g)
	require.NoError(t, err)

	res, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.Equal(t, []Position{P(1, 1)}, s.PathPositions())
	assert.Equal(t, 0.0, s.PathCost())
}

func TestEnclosedGoalFails(t *testing.T) {
	goal := P(2, 2)
	var ring []Position
	for _, d := range neighborOffsets {
		ring = append(ring, goal.Add(d[0], d[1]))
	}
	g, err := NewGrid(5, 5, P(0, 0), goal, ring)
	require.NoError(t, err)

	s, err := Initialize(g)
	require.NoError(t, err)

	res := runToEnd(t, s, 100)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Empty(t, s.PathPositions())
	assert.Equal(t, 16, s.ExploredLen(), "every reachable outer cell is explored")
	assert.Equal(t, 0, s.FrontierLen())
	assert.Equal(t, 0.0, s.PathCost())
}

func TestStepAfterFinishIsInvalidState(t *testing.T) {
	s, err := Initialize(openGrid(t, 2, 2))
	require.NoError(t, err)
	runToEnd(t, s, 10)

	steps := s.Steps()
	res, err := s.Step()
	require.ErrorIs(t, err, ErrInvalidState)
	assert.False(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.Equal(t, steps, s.Steps(), "rejected step must not count")
}

func TestObstacleFreeGridsAlwaysSucceed(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {5, 9}, {12, 4}, {25, 25}}
	for _, sz := range sizes {
		g := openGrid(t, sz[0], sz[1])
		s, err := Initialize(g)
		require.NoError(t, err)

		runToEnd(t, s, sz[0]*sz[1]+1)
		require.Equal(t, StatusSucceeded, s.Status(), "grid %dx%d", sz[0], sz[1])

		path := s.PathPositions()
		require.NotEmpty(t, path)
		assert.Equal(t, g.Start(), path[0])
		assert.Equal(t, g.Goal(), path[len(path)-1])
	}
}

func TestPathIsContiguousAndAvoidsWalls(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		spec := DefaultSpec(20, 20)
		spec.Seed = seed
		spec.ObstacleProbability = 0.3
		g, err := Generate(spec)
		require.NoError(t, err)

		s, err := Initialize(g)
		require.NoError(t, err)
		runToEnd(t, s, 20*20+1)

		path := s.PathPositions()
		if s.Status() == StatusFailed {
			assert.Empty(t, path)
			continue
		}
		for i, p := range path {
			assert.False(t, g.IsObstacle(p), "seed %d: path crosses wall at %v", seed, p)
			if i > 0 {
				assert.True(t, Adjacent(path[i-1], p), "seed %d: %v -> %v not adjacent", seed, path[i-1], p)
			}
		}
	}
}

func TestFrontierAndExploredStayDisjoint(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		spec := DefaultSpec(15, 15)
		spec.Seed = seed
		g, err := Generate(spec)
		require.NoError(t, err)
		s, err := Initialize(g)
		require.NoError(t, err)

		for !s.Status().Done() {
			_, err := s.Step()
			require.NoError(t, err)
			for _, p := range s.FrontierPositions() {
				require.True(t, s.InFrontier(p))
				require.False(t, s.InExplored(p), "seed %d: %v in both sets", seed, p)
			}
			for _, p := range s.ExploredPositions() {
				require.False(t, s.InFrontier(p), "seed %d: %v in both sets", seed, p)
			}
		}
	}
}

func TestObstaclesNeverIncreaseOpenGridOptimum(t *testing.T) {
	const n = 15
	open := openGrid(t, n, n)
	s, err := Initialize(open)
	require.NoError(t, err)
	runToEnd(t, s, n*n+1)
	openLen := len(s.PathPositions())
	openCost := s.PathCost()
	require.Equal(t, n, openLen)
	require.InDelta(t, (n-1)*math.Sqrt2, openCost, 1e-9)

	succeeded := 0
	for seed := int64(1); seed <= 50; seed++ {
		for _, p := range []float64{0.1, 0.2, 0.3} {
			spec := DefaultSpec(n, n)
			spec.Seed = seed
			spec.ObstacleProbability = p
			g, err := Generate(spec)
			require.NoError(t, err)

			s, err := Initialize(g)
			require.NoError(t, err)
			runToEnd(t, s, n*n+1)
			if s.Status() != StatusSucceeded {
				continue
			}
			succeeded++
			assert.GreaterOrEqual(t, len(s.PathPositions()), openLen)
			assert.GreaterOrEqual(t, s.PathCost(), openCost-1e-9)
		}
	}
	assert.Positive(t, succeeded)
}

func TestReconstructIsIdempotent(t *testing.T) {
	spec := DefaultSpec(10, 10)
	spec.Seed = 7
	spec.ObstacleProbability = 0.2
	g, err := Generate(spec)
	require.NoError(t, err)
	s, err := Initialize(g)
	require.NoError(t, err)
	runToEnd(t, s, 101)
	if s.Status() != StatusSucceeded {
		t.Skip("seed produced an unsolvable grid")
	}

	goal, ok := s.GoalNode()
	require.True(t, ok)
	first := Reconstruct(s.Explored(), goal)
	second := Reconstruct(s.Explored(), goal)
	assert.Equal(t, first, second)
	assert.Equal(t, s.PathPositions(), first)
}

func TestExploredNodesAreFrozen(t *testing.T) {
	s, err := Initialize(openGrid(t, 6, 6))
	require.NoError(t, err)

	_, err = s.Step()
	require.NoError(t, err)
	before, ok := s.Explored().Get(P(0, 0))
	require.True(t, ok)

	runToEnd(t, s, 37)
	after, ok := s.Explored().Get(P(0, 0))
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestRunHonoursContext(t *testing.T) {
	s, err := Initialize(openGrid(t, 8, 8))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusRunning, s.Status())

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, res.Status)
}

func TestDeterministicForSeed(t *testing.T) {
	spec := DefaultSpec(25, 25)
	spec.Seed = 12345

	run := func() ([]Position, []Position, int) {
		g, err := Generate(spec)
		require.NoError(t, err)
		s, err := Initialize(g)
		require.NoError(t, err)
		_, err = s.Run(context.Background())
		require.NoError(t, err)
		return s.ExploredPositions(), s.PathPositions(), s.Steps()
	}

	e1, p1, n1 := run()
	e2, p2, n2 := run()
	assert.Equal(t, e1, e2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, n1, n2)
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
		done     bool
	}{
		{StatusRunning, "running", false},
		{StatusSucceeded, "succeeded", true},
		{StatusFailed, "failed", true},
		{Status(99), "unknown", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.status.String())
		assert.Equal(t, tc.done, tc.status.Done())
	}
}
