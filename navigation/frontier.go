package navigation

import (
	"github.com/zyedidia/generic/heap"

	"github.com/lixenwraith/pathfinder/grid"
)

// frontierEntry is one open-set slot
// A cell whose cost drops gets a new entry; the old one goes stale and is skipped on pop
type frontierEntry struct {
	cell *grid.Cell
	key  int // f = g+h for A*, accumulated cost for Dijkstra
	h    int
	g    int
	seq  int // Order of first insertion into the open set
}

// frontierLess orders by key, then h, then first insertion
// Equivalent to a linear scan of an insertion-ordered open list keeping the first minimum
func frontierLess(a, b frontierEntry) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func newFrontier() *heap.Heap[frontierEntry] {
	return heap.New(frontierLess)
}
