package pathviz

// Snapshot captures the visualizer state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Run          int
	Seed         int64
	Status       string
	Steps        int
	Expansions   int
	Frontier     int
	Explored     int
	PathLen      int
	PathCost     float64
	Walls        int
	StepsPerTick int
	Paused       bool
	TooSmall     bool
}

// Snapshot returns the current visualizer snapshot.
func (v *Visualizer) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         v.tick,
		Run:          v.runs,
		Seed:         v.seed,
		Status:       "none",
		StepsPerTick: v.stepsPerTick,
		Paused:       v.paused,
		TooSmall:     v.tooSmall,
	}
	if s := v.search; s != nil {
		snap.Status = s.Status().String()
		snap.Steps = s.Steps()
		snap.Expansions = s.Expansions()
		snap.Frontier = s.FrontierLen()
		snap.Explored = s.ExploredLen()
		snap.PathLen = len(s.PathPositions())
		snap.PathCost = s.PathCost()
		snap.Walls = s.Grid().ObstacleCount()
	}
	return snap
}
