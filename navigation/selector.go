package navigation

import (
	"fmt"
	"log"
	"sync"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/status"
)

// Selector holds the active algorithm and its pathfinder for one grid
// All searches and grid mutations go through the selector's lock, one operation at a time
type Selector struct {
	mu     sync.Mutex
	grid   *grid.Grid
	active Algorithm

	// Cached pathfinder and the grid generation it was created for
	cached    Pathfinder
	cachedGen uint64

	metrics *status.Registry // Optional
}

// NewSelector binds a selector to g with an initial algorithm
func NewSelector(g *grid.Grid, active Algorithm) (*Selector, error) {
	if !active.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, active)
	}
	return &Selector{grid: g, active: active}, nil
}

// SetMetrics attaches a registry that receives per-algorithm search counters, nil detaches
func (s *Selector) SetMetrics(r *status.Registry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = r
}

// Active returns the current algorithm
func (s *Selector) Active() Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Select switches algorithm, rebuilds the grid and drops the cached pathfinder
// The grid is rebuilt even when a is already active
func (s *Selector) Select(a Algorithm) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.active
	s.active = a
	s.grid.Rebuild()
	s.cached = nil
	if s.metrics != nil {
		s.metrics.Count("grid.rebuilds", 1)
	}

	log.Printf("navigation: algorithm %s -> %s, grid rebuilt (generation %d)", prev, a, s.grid.Generation())
	return nil
}

// Pathfinder returns the pathfinder for the active algorithm, creating it on first use
func (s *Selector) Pathfinder() Pathfinder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pathfinderLocked()
}

func (s *Selector) pathfinderLocked() Pathfinder {
	if s.cached != nil && s.cachedGen == s.grid.Generation() && s.cached.Algorithm() == s.active {
		return s.cached
	}
	pf, err := New(s.active)
	if err != nil {
		// active is validated on every write
		panic(err)
	}
	s.cached = pf
	s.cachedGen = s.grid.Generation()
	return pf
}

// FindPath resolves both world points to cells and runs the active search
// An empty waypoint slice means no route; that is not an error
func (s *Selector) FindPath(startPos, targetPos core.Vec2) (Result, []core.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.grid.CellAt(startPos)
	target := s.grid.CellAt(targetPos)
	return s.runLocked(start, target)
}

// FindMarked searches between the grid's flagged start and end cells
// Returns false when either flag is unset
func (s *Selector) FindMarked() (Result, []core.Vec2, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, target := s.grid.Start(), s.grid.End()
	if start == nil || target == nil {
		return Result{}, nil, false
	}
	res, waypoints := s.runLocked(start, target)
	return res, waypoints, true
}

func (s *Selector) runLocked(start, target *grid.Cell) (Result, []core.Vec2) {
	res := s.pathfinderLocked().FindPath(s.grid, start, target)
	// Flags move to the new route ends so the grid keeps one start and one end
	if res.Found {
		s.grid.ClearStart()
		s.grid.ClearEnd()
	}
	waypoints := ToWaypoints(res.Path)
	if s.metrics != nil {
		s.record(res)
	}

	log.Printf("navigation: %s %v -> %v found=%t visited=%d hops=%d cost=%d in %s",
		res.Algorithm, start.Pos, target.Pos, res.Found, len(res.Order), res.Hops(), res.Cost, res.Elapsed)
	return res, waypoints
}

func (s *Selector) record(res Result) {
	prefix := "search." + res.Algorithm.String()
	s.metrics.Count(prefix+".runs", 1)
	s.metrics.Count(prefix+".visited", int64(len(res.Order)))
	if !res.Found {
		s.metrics.Count(prefix+".unreachable", 1)
	}
	s.metrics.Accumulate(prefix+".ms", float64(res.Elapsed.Microseconds())/1000)
}

// Update runs a grid mutation (obstacle painting, start/end picking) under the selector lock
func (s *Selector) Update(fn func(g *grid.Grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}

// View runs a read-only grid inspection under the selector lock
func (s *Selector) View(fn func(g *grid.Grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}
