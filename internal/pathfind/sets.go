package pathfind

import (
	"container/heap"
	"sort"
)

// nodeQueue is a min-heap of frontier nodes ordered by F, then H, then
// insertion order.
type nodeQueue []*Node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.H != b.H {
		return a.H < b.H
	}
	return a.seq < b.seq
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	n := x.(*Node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *nodeQueue) Pop() any {
	old := *q
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*q = old[:last]
	return n
}

// Frontier is the open set: discovered but not yet expanded nodes, at most
// one per position.
type Frontier struct {
	queue   nodeQueue
	byPos   map[Position]*Node
	nextSeq int
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{byPos: make(map[Position]*Node)}
}

// Len returns the number of queued nodes.
func (f *Frontier) Len() int { return len(f.queue) }

// Contains reports whether a node for p is queued.
func (f *Frontier) Contains(p Position) bool {
	_, ok := f.byPos[p]
	return ok
}

// Get returns a copy of the queued node for p. Costs change only through Relax.
func (f *Frontier) Get(p Position) (Node, bool) {
	n, ok := f.byPos[p]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Push queues n. A node already queued for the same position is replaced.
func (f *Frontier) Push(n *Node) {
	if old, ok := f.byPos[n.Pos]; ok {
		heap.Remove(&f.queue, old.index)
	}
	n.seq = f.nextSeq
	f.nextSeq++
	heap.Push(&f.queue, n)
	f.byPos[n.Pos] = n
}

// Peek returns a copy of the best node without removing it.
func (f *Frontier) Peek() (Node, bool) {
	if len(f.queue) == 0 {
		return Node{}, false
	}
	return *f.queue[0], true
}

// PopBest removes and returns the node with minimal F.
func (f *Frontier) PopBest() (*Node, bool) {
	if len(f.queue) == 0 {
		return nil, false
	}
	n := heap.Pop(&f.queue).(*Node)
	delete(f.byPos, n.Pos)
	return n, true
}

// Relax lowers the cost of the queued node at p if g improves on it.
// Returns true if the node was updated.
func (f *Frontier) Relax(p Position, parent Position, g float64) bool {
	n, ok := f.byPos[p]
	if !ok || g >= n.G {
		return false
	}
	n.setParent(parent, g)
	heap.Fix(&f.queue, n.index)
	return true
}

// Positions returns the queued positions in row-major order.
func (f *Frontier) Positions() []Position {
	out := make([]Position, 0, len(f.byPos))
	for p := range f.byPos {
		out = append(out, p)
	}
	sortRowMajor(out)
	return out
}

// Explored is the closed set. Nodes stored here are frozen copies.
type Explored struct {
	nodes map[Position]Node
	order []Position
}

// NewExplored creates an empty closed set.
func NewExplored() *Explored {
	return &Explored{nodes: make(map[Position]Node)}
}

// Len returns the number of explored nodes.
func (e *Explored) Len() int { return len(e.order) }

// Contains reports whether p has been explored.
func (e *Explored) Contains(p Position) bool {
	_, ok := e.nodes[p]
	return ok
}

// Get returns the frozen node stored for p.
func (e *Explored) Get(p Position) (Node, bool) {
	n, ok := e.nodes[p]
	return n, ok
}

// Add freezes n into the set. Adding a position twice keeps the first node.
func (e *Explored) Add(n Node) {
	if _, ok := e.nodes[n.Pos]; ok {
		return
	}
	n.index = -1
	e.nodes[n.Pos] = n
	e.order = append(e.order, n.Pos)
}

// Positions returns explored positions in the order they were closed.
func (e *Explored) Positions() []Position {
	out := make([]Position, len(e.order))
	copy(out, e.order)
	return out
}

func sortRowMajor(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}
