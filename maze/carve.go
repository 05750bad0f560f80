package maze

import (
	"math/rand"

	"github.com/lixenwraith/pathfinder/core"
)

var (
	orthogonal = [4]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	jumps      = [4]core.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
)

// carve runs the recursive backtracker over odd rooms, yielding a uniform spanning tree
func (l *Layout) carve(from core.Point, rng *rand.Rand) {
	stack := []core.Point{from}
	l.open(from.X, from.Y)

	candidates := make([]core.Point, 0, len(jumps))
	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range jumps {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Keep the outer ring solid
			if nx > 0 && nx < l.Width-1 && ny > 0 && ny < l.Height-1 && l.Wall(nx, ny) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		l.open(curr.X+d.X/2, curr.Y+d.Y/2)
		next := curr.Add(d)
		l.open(next.X, next.Y)
		stack = append(stack, next)
	}
}

// braid knocks one wall out of dead-end rooms with the given probability, creating loops
func (l *Layout) braid(probability float64, rng *rand.Rand) {
	candidates := make([]core.Point, 0, len(jumps))
	for y := 1; y < l.Height-1; y += 2 {
		for x := 1; x < l.Width-1; x += 2 {
			if l.Wall(x, y) || l.exits(x, y) != 1 || rng.Float64() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range jumps {
				wx, wy := x+d.X/2, y+d.Y/2
				if l.InBounds(x+d.X, y+d.Y) && !l.Wall(x+d.X, y+d.Y) && l.Wall(wx, wy) && l.safeToOpen(wx, wy) {
					candidates = append(candidates, core.Point{X: wx, Y: wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				l.open(c.X, c.Y)
			}
		}
	}
}

// safeToOpen rejects openings that would create a 2x2 plaza or leave an isolated pillar
func (l *Layout) safeToOpen(x, y int) bool {
	passage := func(px, py int) bool { return !l.Wall(px, py) }

	// Each 2x2 block containing (x,y)
	for _, q := range [4]core.Point{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}} {
		bx, by := x+q.X, y+q.Y
		open := 0
		for _, c := range [4]core.Point{{X: bx, Y: by}, {X: bx + 1, Y: by}, {X: bx, Y: by + 1}, {X: bx + 1, Y: by + 1}} {
			if (c.X == x && c.Y == y) || passage(c.X, c.Y) {
				open++
			}
		}
		if open == 4 {
			return false
		}
	}

	for _, d := range orthogonal {
		nx, ny := x+d.X, y+d.Y
		if !l.InBounds(nx, ny) || !l.Wall(nx, ny) {
			continue
		}
		// A wall neighbor must keep another wall attached once (x,y) opens
		attached := false
		for _, d2 := range orthogonal {
			ax, ay := nx+d2.X, ny+d2.Y
			if (ax == x && ay == y) || !l.InBounds(ax, ay) {
				continue
			}
			if l.Wall(ax, ay) {
				attached = true
				break
			}
		}
		if !attached {
			return false
		}
	}
	return true
}
