package navigation

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/pathfinder/grid"
)

// AStarSearch expands the open cell with the lowest F cost, ties broken by H cost then discovery order
type AStarSearch struct{}

// astarNode is the per-call G/H/parent record of one cell
type astarNode struct {
	g, h   int
	parent *grid.Cell
	seq    int
}

func (AStarSearch) Algorithm() Algorithm { return AStar }

func (AStarSearch) FindPath(g Graph, start, target *grid.Cell) Result {
	began := time.Now()

	visits := newVisitLog()
	nodes := make(map[*grid.Cell]*astarNode)
	closed := mapset.New[*grid.Cell]()
	open := newFrontier()

	startNode := &astarNode{h: Distance(start.Pos, target.Pos)}
	nodes[start] = startNode
	open.Push(frontierEntry{cell: start, key: startNode.h, h: startNode.h})
	nextSeq := 1

	var path []*grid.Cell
	for open.Size() > 0 {
		entry, _ := open.Pop()
		current := entry.cell
		node := nodes[current]
		if closed.Has(current) || entry.g != node.g {
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

			movementCost := node.g + Distance(current.Pos, neighbor.Pos)
			n, inOpen := nodes[neighbor]
			if inOpen && movementCost >= n.g {
				continue
			}
			if !inOpen {
				n = &astarNode{seq: nextSeq}
				nextSeq++
				nodes[neighbor] = n
			}

			n.g = movementCost
			n.h = Distance(neighbor.Pos, target.Pos)
			n.parent = current
			open.Push(frontierEntry{cell: neighbor, key: n.g + n.h, h: n.h, g: n.g, seq: n.seq})
		}
	}

	return finish(AStar, start, target, path, visits, began)
}
