package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Chebyshev returns the king-move distance between two points
func (p Point) Chebyshev(o Point) int {
	dx, dy := absInt(p.X-o.X), absInt(p.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
