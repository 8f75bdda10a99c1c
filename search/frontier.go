package search

import "container/heap"

// frontier is the set of discovered-but-not-yet-expanded nodes. The three
// disciplines below give the engine its pluggable expansion order; the engine
// itself only ever pushes, pops, and checks emptiness.
type frontier interface {
	push(n *Node)
	pop() *Node
	len() int
}

// newFrontier selects the discipline for the given strategy.
func newFrontier(s Strategy) (frontier, error) {
	switch s {
	case UniformCost:
		return &costFrontier{astar: false}, nil
	case AStar:
		return &costFrontier{astar: true}, nil
	case BreadthFirst:
		return &fifoFrontier{}, nil
	case DepthFirst:
		return &lifoFrontier{}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// costFrontier is a binary min-heap of nodes ordered by priority ascending,
// where priority is g (UniformCost) or g+h (AStar). Equal priorities fall
// back to ascending sequence id, which gives FIFO behavior among ties and
// keeps runs fully deterministic.
//
// The heap follows the "lazy decrease-key" pattern: when a cheaper path to an
// already-queued state is found, the engine pushes a fresh entry instead of
// updating the old one. Stale entries are detected against the best-cost map
// at pop time and discarded, so no decrease-key operation is ever needed.
type costFrontier struct {
	items []*Node
	astar bool
}

// priority is the heap key for n under this frontier's strategy.
func (f *costFrontier) priority(n *Node) float64 {
	if f.astar {
		return n.g + n.h
	}

	return n.g
}

// Len reports the number of queued entries (including stale ones).
func (f *costFrontier) Len() int { return len(f.items) }

// Less orders by priority ascending, then by sequence id ascending.
func (f *costFrontier) Less(i, j int) bool {
	pi, pj := f.priority(f.items[i]), f.priority(f.items[j])
	if pi == pj {
		return f.items[i].seq < f.items[j].seq
	}

	return pi < pj
}

// Swap swaps two heap slots.
func (f *costFrontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push appends x; called by heap.Push only.
func (f *costFrontier) Push(x interface{}) { f.items = append(f.items, x.(*Node)) }

// Pop removes and returns the last slot; called by heap.Pop only.
func (f *costFrontier) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the reference for GC
	f.items = old[:n-1]

	return item
}

func (f *costFrontier) push(n *Node) { heap.Push(f, n) }

func (f *costFrontier) pop() *Node { return heap.Pop(f).(*Node) }

func (f *costFrontier) len() int { return len(f.items) }

// fifoFrontier is a plain queue: BreadthFirst discipline.
// The head index avoids re-slicing the front on every pop; the backing array
// is compacted once more than half of it is dead.
type fifoFrontier struct {
	items []*Node
	head  int
}

func (f *fifoFrontier) push(n *Node) { f.items = append(f.items, n) }

func (f *fifoFrontier) pop() *Node {
	n := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	if f.head > len(f.items)/2 && f.head > 32 {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}

	return n
}

func (f *fifoFrontier) len() int { return len(f.items) - f.head }

// lifoFrontier is a plain stack: DepthFirst discipline.
type lifoFrontier struct {
	items []*Node
}

func (f *lifoFrontier) push(n *Node) { f.items = append(f.items, n) }

func (f *lifoFrontier) pop() *Node {
	last := len(f.items) - 1
	n := f.items[last]
	f.items[last] = nil
	f.items = f.items[:last]

	return n
}

func (f *lifoFrontier) len() int { return len(f.items) }
