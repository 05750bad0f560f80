package grid

import "github.com/lixenwraith/pathfinder/core"

// Cell is one discrete grid position
// Pos and World are fixed at build time; flags are mutated by obstacle painting and start/end selection
type Cell struct {
	Pos   core.Point
	World core.Vec2

	Walkable bool
	IsStart  bool
	IsEnd    bool
}

// X returns the grid column
func (c *Cell) X() int { return c.Pos.X }

// Y returns the grid row
func (c *Cell) Y() int { return c.Pos.Y }
