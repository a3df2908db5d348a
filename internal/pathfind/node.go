package pathfind

// Node is a grid cell as seen by the search.
//
// Parent is a key into the explored set rather than a pointer, so chains
// never form ownership cycles and stay valid when frontier nodes are updated.
type Node struct {
	Pos       Position
	G         float64 // Cost from start
	H         float64 // Estimate to goal, fixed at creation
	F         float64 // G + H
	Parent    Position
	HasParent bool // False only for the start node

	seq   int // Frontier insertion order, used for tie-breaks
	index int // Position in the frontier heap, -1 when not queued
}

func newNode(pos Position, g, h float64) *Node {
	return &Node{Pos: pos, G: g, H: h, F: g + h, index: -1}
}

// setParent records a cheaper route to this node.
func (n *Node) setParent(parent Position, g float64) {
	n.G = g
	n.F = g + n.H
	n.Parent = parent
	n.HasParent = true
}
