package navigation

import (
	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
)

// Weighted step costs: straight = 10, diagonal = 14 (≈10√2)
const (
	CostStraight = 10
	CostDiagonal = 14

	costUnreached = 1<<30 - 1
)

// StepFunc prices a move between two cells; also used as a heuristic
type StepFunc func(a, b core.Point) int

// Distance is the octile distance scaled by 10: diagonal moves first, straight for the remainder
func Distance(a, b core.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return CostDiagonal*dy + CostStraight*(dx-dy)
	}
	return CostDiagonal*dx + CostStraight*(dy-dx)
}

// Hop prices every move at 1 regardless of direction
func Hop(a, b core.Point) int {
	if a == b {
		return 0
	}
	return 1
}

// PathCost sums Distance over consecutive cells, 0 for paths shorter than two cells
func PathCost(path []*grid.Cell) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1].Pos, path[i].Pos)
	}
	return total
}
