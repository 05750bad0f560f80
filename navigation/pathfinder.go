package navigation

import (
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/pathfinder/grid"
)

// Graph answers neighbor queries; *grid.Grid satisfies it
type Graph interface {
	Neighbors(c *grid.Cell) []*grid.Cell
}

// Pathfinder is the shared search contract
// Implementations keep all search state local to one FindPath call
type Pathfinder interface {
	Algorithm() Algorithm
	FindPath(g Graph, start, target *grid.Cell) Result
}

// Result is immutable once returned
type Result struct {
	Algorithm Algorithm
	Start     *grid.Cell
	Target    *grid.Cell

	// Path runs start to target inclusive, empty when no route exists
	Path []*grid.Cell

	// Order lists every examined cell once, in examination order
	Order []*grid.Cell

	Elapsed time.Duration
	Cost    int // Weighted cost of Path (straight=10, diagonal=14)
	Found   bool
}

// Hops returns the number of moves along the path
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// OnPath reports whether c is part of the returned path
func (r Result) OnPath(c *grid.Cell) bool {
	return slices.Contains(r.Path, c)
}

// visitLog records visitation order without duplicates
type visitLog struct {
	order []*grid.Cell
	seen  mapset.Set[*grid.Cell]
}

func newVisitLog() *visitLog {
	return &visitLog{seen: mapset.New[*grid.Cell]()}
}

func (v *visitLog) record(c *grid.Cell) {
	if v.seen.Has(c) {
		return
	}
	v.seen.Put(c)
	v.order = append(v.order, c)
}

// retrace walks parent links from target back to start and returns the path start-first
func retrace(start, target *grid.Cell, parentOf func(*grid.Cell) *grid.Cell) []*grid.Cell {
	path := []*grid.Cell{target}
	for c := target; c != start; {
		c = parentOf(c)
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// finish assembles the result and stamps the elapsed time
func finish(a Algorithm, start, target *grid.Cell, path []*grid.Cell, visits *visitLog, began time.Time) Result {
	return Result{
		Algorithm: a,
		Start:     start,
		Target:    target,
		Path:      path,
		Order:     visits.order,
		Elapsed:   time.Since(began),
		Cost:      PathCost(path),
		Found:     len(path) > 0,
	}
}
