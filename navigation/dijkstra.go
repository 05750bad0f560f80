package navigation

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/pathfinder/grid"
)

// DijkstraSearch expands the open cell with the lowest accumulated cost, ties broken by discovery order
type DijkstraSearch struct{}

type dijkstraNode struct {
	cost   int
	parent *grid.Cell
	seq    int
}

func (DijkstraSearch) Algorithm() Algorithm { return Dijkstra }

func (DijkstraSearch) FindPath(g Graph, start, target *grid.Cell) Result {
	began := time.Now()

	visits := newVisitLog()
	nodes := make(map[*grid.Cell]*dijkstraNode)
	closed := mapset.New[*grid.Cell]()
	open := newFrontier()

	costOf := func(c *grid.Cell) int {
		if n, ok := nodes[c]; ok {
			return n.cost
		}
		return costUnreached
	}

	nodes[start] = &dijkstraNode{}
	open.Push(frontierEntry{cell: start})
	nextSeq := 1

	var path []*grid.Cell
	for open.Size() > 0 {
		entry, _ := open.Pop()
		current := entry.cell
		node := nodes[current]
		if closed.Has(current) || entry.key != node.cost {
			continue
		}

		closed.Put(current)
		visits.record(current)

		if current == target {
			path = retrace(start, target, func(c *grid.Cell) *grid.Cell { return nodes[c].parent })
			break
		}

		for _, neighbor := range g.Neighbors(current) {
			if !neighbor.Walkable || closed.Has(neighbor) {
				continue
			}
			visits.record(neighbor)

			candidate := node.cost + Distance(current.Pos, neighbor.Pos)
			if candidate >= costOf(neighbor) {
				continue
			}

			n, ok := nodes[neighbor]
			if !ok {
				n = &dijkstraNode{seq: nextSeq}
				nextSeq++
				nodes[neighbor] = n
			}
			n.cost = candidate
			n.parent = current
			open.Push(frontierEntry{cell: neighbor, key: n.cost, g: n.cost, seq: n.seq})
		}
	}

	return finish(Dijkstra, start, target, path, visits, began)
}
