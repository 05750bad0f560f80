package navigation

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/pathfinder/grid"
)

// DFSSearch follows BFSSearch's visited/parent discipline with a LIFO stack
// Neighbors are pushed in Grid.Neighbors order, so the last one listed is expanded first
// Finds a path whenever one exists; neither hop count nor cost is minimal
type DFSSearch struct{}

func (DFSSearch) Algorithm() Algorithm { return DFS }

func (DFSSearch) FindPath(g Graph, start, target *grid.Cell) Result {
	began := time.Now()

	visits := newVisitLog()
	visited := mapset.New[*grid.Cell]()
	parents := make(map[*grid.Cell]*grid.Cell)
	parentOf := func(c *grid.Cell) *grid.Cell { return parents[c] }

	stack := []*grid.Cell{start}
	visited.Put(start)

	var path []*grid.Cell
search:
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visits.record(current)

		if current == target {
			path = retrace(start, target, parentOf)
			break
		}

		for _, neighbor := range g.Neighbors(current) {
			if !neighbor.Walkable || visited.Has(neighbor) {
				continue
			}
			parents[neighbor] = current
			visited.Put(neighbor)
			stack = append(stack, neighbor)
			visits.record(neighbor)

			if neighbor == target {
				path = retrace(start, target, parentOf)
				break search
			}
		}
	}

	return finish(DFS, start, target, path, visits, began)
}
