package navigation

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/pathfinder/grid"
)

// BFSSearch explores in non-decreasing hop depth and returns a minimum-hop path
// Stops as soon as the target is discovered
type BFSSearch struct{}

func (BFSSearch) Algorithm() Algorithm { return BFS }

func (BFSSearch) FindPath(g Graph, start, target *grid.Cell) Result {
	began := time.Now()

	visits := newVisitLog()
	visited := mapset.New[*grid.Cell]()
	parents := make(map[*grid.Cell]*grid.Cell)
	parentOf := func(c *grid.Cell) *grid.Cell { return parents[c] }

	queue := []*grid.Cell{start}
	visited.Put(start)

	var path []*grid.Cell
search:
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
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
			queue = append(queue, neighbor)
			visits.record(neighbor)

			if neighbor == target {
				path = retrace(start, target, parentOf)
				break search
			}
		}
	}

	return finish(BFS, start, target, path, visits, began)
}
