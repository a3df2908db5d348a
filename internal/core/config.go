package core

// RuntimeConfig is what the platform tells the visualizer on Reset: the
// screen it may draw on, the tick rate and the seed of the first layout.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Ticks per second, set by --fps
	Seed     int64 // 0 is replaced by a time-based seed in the platform layer
}

// RunState represents the current state of a simulation.
// Returned by State() to communicate status to the platform.
type RunState struct {
	Steps    int  // Search steps taken in the current run
	Finished bool // Whether the current run has reached a terminal status
	Paused   bool // Whether stepping is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State RunState
}
