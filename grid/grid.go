package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/lixenwraith/pathfinder/core"
)

// ObstacleFunc reports whether the world point is obstructed
// Supplied by the collision/terrain collaborator and queried once per cell on every build
type ObstacleFunc func(p core.Vec2) bool

// neighborOffsets is the fixed 3x3 scan order (x outer, y inner) with the center skipped
// Searches that break ties by first-found depend on this order
var neighborOffsets = [8]core.Point{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 1},
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

// Grid owns the 2D cell array
// Not safe for concurrent use; navigation.Selector serializes access
type Grid struct {
	cfg          Config
	sizeX, sizeY int
	cells        []*Cell // Row-major: y*sizeX + x
	isObstacle   ObstacleFunc
	generation   uint64
}

// New validates cfg and builds the first generation of cells
func New(cfg Config, isObstacle ObstacleFunc) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{cfg: cfg, isObstacle: isObstacle}
	g.sizeX, g.sizeY = cfg.Dimensions()
	g.build()
	return g, nil
}

// MustNew is New for fixed configs known to be valid
func MustNew(cfg Config, isObstacle ObstacleFunc) *Grid {
	g, err := New(cfg, isObstacle)
	if err != nil {
		panic(fmt.Sprintf("grid: %v", err))
	}
	return g
}

// build lays out a fresh lattice and queries the obstacle predicate per cell
func (g *Grid) build() {
	d := g.cfg.Diameter()
	r := g.cfg.CellRadius
	bottomLeft := g.cfg.BottomLeft()

	cells := make([]*Cell, g.sizeX*g.sizeY)
	for y := 0; y < g.sizeY; y++ {
		for x := 0; x < g.sizeX; x++ {
			world := bottomLeft.Add(core.V(float64(x)*d+r, float64(y)*d+r))
			walkable := true
			if g.isObstacle != nil && g.isObstacle(world) {
				walkable = false
			}
			cells[y*g.sizeX+x] = &Cell{
				Pos:      core.Point{X: x, Y: y},
				World:    world,
				Walkable: walkable,
			}
		}
	}
	g.cells = cells
	g.generation++
}

// Rebuild discards every cell and lays out a new generation
// Non-walkable, start and end cells are re-applied by world position
func (g *Grid) Rebuild() {
	var (
		obstacles        []core.Vec2
		startPos, endPos core.Vec2
		hasStart, hasEnd bool
	)
	for _, c := range g.cells {
		if !c.Walkable {
			obstacles = append(obstacles, c.World)
		}
		if c.IsStart {
			startPos, hasStart = c.World, true
		}
		if c.IsEnd {
			endPos, hasEnd = c.World, true
		}
	}

	g.build()

	for _, p := range obstacles {
		g.CellAt(p).Walkable = false
	}
	if hasStart {
		g.CellAt(startPos).IsStart = true
	}
	if hasEnd {
		g.CellAt(endPos).IsEnd = true
	}
}

// Config returns the static grid configuration
func (g *Grid) Config() Config { return g.cfg }

// Size returns cell counts per axis
func (g *Grid) Size() (sizeX, sizeY int) { return g.sizeX, g.sizeY }

// Len returns the total cell count
func (g *Grid) Len() int { return len(g.cells) }

// Generation increments on every build, cells from older generations are detached
func (g *Grid) Generation() uint64 { return g.generation }

// InBounds reports whether (x,y) addresses a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.sizeX && y < g.sizeY
}

// Cell returns the cell at grid coordinates, nil if out of bounds
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.sizeX+x]
}

// CellAt maps a world point to the nearest cell, clamping points outside the grid to the edge
func (g *Grid) CellAt(p core.Vec2) *Cell {
	local := p.Sub(g.cfg.Origin).Add(g.cfg.WorldSize.Scale(0.5))
	percentX := core.Clamp01(local.X / g.cfg.WorldSize.X)
	percentY := core.Clamp01(local.Y / g.cfg.WorldSize.Y)

	x := int(math.RoundToEven(float64(g.sizeX-1) * percentX))
	y := int(math.RoundToEven(float64(g.sizeY-1) * percentY))
	return g.cells[y*g.sizeX+x]
}

// Neighbors returns the up-to-8 cells at Chebyshev distance 1 in fixed scan order
func (g *Grid) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := c.Pos.X+off.X, c.Pos.Y+off.Y
		if g.InBounds(nx, ny) {
			out = append(out, g.cells[ny*g.sizeX+nx])
		}
	}
	return out
}

// Cells iterates every cell in row-major order
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Diameter returns the cell edge length in world units
func (g *Grid) Diameter() float64 { return g.cfg.Diameter() }
