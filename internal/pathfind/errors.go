package pathfind

import "errors"

var (
	// ErrInvalidConfiguration indicates a grid or spec that cannot be searched:
	// non-positive dimensions, a probability outside [0,1], or a start/goal
	// that is out of bounds or sits on an obstacle.
	ErrInvalidConfiguration = errors.New("pathfind: invalid configuration")
	// ErrInvalidState indicates Step was called after the run reached a
	// terminal status.
	ErrInvalidState = errors.New("pathfind: search already finished")
)
