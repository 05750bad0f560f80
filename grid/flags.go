package grid

// Toggle inverts the walkable flag, start/end cells are left untouched
// Returns the new walkable state
func (g *Grid) Toggle(c *Cell) bool {
	if c.IsStart || c.IsEnd {
		return c.Walkable
	}
	c.Walkable = !c.Walkable
	return c.Walkable
}

// Start returns the first cell flagged as start, nil if none
func (g *Grid) Start() *Cell {
	for _, c := range g.cells {
		if c.IsStart {
			return c
		}
	}
	return nil
}

// End returns the first cell flagged as end, nil if none
func (g *Grid) End() *Cell {
	for _, c := range g.cells {
		if c.IsEnd {
			return c
		}
	}
	return nil
}

// MarkStart flags c as the only start cell
// Rejects unwalkable cells and the current end cell
func (g *Grid) MarkStart(c *Cell) bool {
	if !c.Walkable || c.IsEnd {
		return false
	}
	g.ClearStart()
	c.IsStart = true
	return true
}

// MarkEnd flags c as the only end cell
// Rejects unwalkable cells and the current start cell
func (g *Grid) MarkEnd(c *Cell) bool {
	if !c.Walkable || c.IsStart {
		return false
	}
	g.ClearEnd()
	c.IsEnd = true
	return true
}

func (g *Grid) ClearStart() {
	for _, c := range g.cells {
		c.IsStart = false
	}
}

func (g *Grid) ClearEnd() {
	for _, c := range g.cells {
		c.IsEnd = false
	}
}

// ResetFlags clears start/end flags and restores walkability from the obstacle predicate
func (g *Grid) ResetFlags() {
	for _, c := range g.cells {
		c.IsStart = false
		c.IsEnd = false
		c.Walkable = g.isObstacle == nil || !g.isObstacle(c.World)
	}
}
