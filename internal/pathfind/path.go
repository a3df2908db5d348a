package pathfind

// Reconstruct follows parent keys from goal back to the parentless start node
// and returns the route start→goal inclusive. goal itself need not be stored
// in explored, but every ancestor must be. The walk is bounded by the size of
// explored, so a corrupted chain truncates instead of looping.
func Reconstruct(explored *Explored, goal Node) []Position {
	path := []Position{goal.Pos}
	current := goal
	for steps := 0; current.HasParent && steps <= explored.Len(); steps++ {
		parent, ok := explored.Get(current.Parent)
		if !ok {
			break
		}
		path = append(path, parent.Pos)
		current = parent
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
