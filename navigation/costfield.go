package navigation

import (
	"github.com/zyedidia/generic/heap"

	"github.com/lixenwraith/pathfinder/grid"
)

// CostField stores the optimal cost from every cell to one target
// Computed by a full Dijkstra sweep outward from the target, so any search result can be checked against it
type CostField struct {
	Width, Height int
	Costs         []int // Per-cell cost to target, costUnreached if no route
	Valid         bool // False until Compute has run for the current size
}

type fieldEntry struct {
	idx  int // Flat grid index (y*width + x)
	dist int
}

// NewCostField creates an empty field for the given dimensions
func NewCostField(width, height int) *CostField {
	return &CostField{
		Width:  width,
		Height: height,
		Costs:  make([]int, width*height),
	}
}

// Resize adjusts field dimensions and invalidates the field
func (f *CostField) Resize(width, height int) {
	size := width * height
	if cap(f.Costs) < size {
		f.Costs = make([]int, size)
	} else {
		f.Costs = f.Costs[:size]
	}
	f.Width = width
	f.Height = height
	f.Valid = false
}

// Cost returns the optimal cost from (x,y) to the target, -1 if unreachable or invalid
func (f *CostField) Cost(x, y int) int {
	if !f.Valid || x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return -1
	}
	c := f.Costs[y*f.Width+x]
	if c >= costUnreached {
		return -1
	}
	return c
}

// Compute sweeps g outward from target pricing moves with step
// Moves follow the searches' rules: any cell may start a route, only walkable cells may be entered
func (f *CostField) Compute(g *grid.Grid, target *grid.Cell, step StepFunc) {
	sx, sy := g.Size()
	if sx != f.Width || sy != f.Height {
		f.Resize(sx, sy)
	}
	for i := range f.Costs {
		f.Costs[i] = costUnreached
	}

	w := f.Width
	targetIdx := target.Y()*w + target.X()
	f.Costs[targetIdx] = 0

	h := heap.New(func(a, b fieldEntry) bool { return a.dist < b.dist })
	// A route ending on an unwalkable target is impossible unless it starts there
	if target.Walkable {
		h.Push(fieldEntry{idx: targetIdx, dist: 0})
	}

	for h.Size() > 0 {
		entry, _ := h.Pop()
		if entry.dist > f.Costs[entry.idx] {
			continue // Stale entry
		}

		current := g.Cell(entry.idx%w, entry.idx/w)
		for _, n := range g.Neighbors(current) {
			nIdx := n.Y()*w + n.X()
			nd := entry.dist + step(n.Pos, current.Pos)
			if nd >= f.Costs[nIdx] {
				continue
			}
			f.Costs[nIdx] = nd
			// Unwalkable cells can only be a route's first cell, never an intermediate one
			if n.Walkable {
				h.Push(fieldEntry{idx: nIdx, dist: nd})
			}
		}
	}

	f.Valid = true
}

// CostFrom returns the optimal cost from c to the field target, -1 if unreachable
func (f *CostField) CostFrom(c *grid.Cell) int {
	return f.Cost(c.X(), c.Y())
}

