package scenario

import (
	"fmt"
	"math"

	"github.com/lixenwraith/pathfinder/core"
)

// Shape kinds
const (
	ShapeRect   = "rect"
	ShapeCircle = "circle"
)

// Shape is an axis-aligned rectangle (center X,Y and size W,H) or a circle (center X,Y and radius R)
type Shape struct {
	Kind string  `toml:"shape"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	W    float64 `toml:"w,omitempty"`
	H    float64 `toml:"h,omitempty"`
	R    float64 `toml:"r,omitempty"`
}

func (s Shape) validate() error {
	if !finite(s.X) || !finite(s.Y) {
		return fmt.Errorf("%s center (%v,%v) is not finite", s.Kind, s.X, s.Y)
	}
	switch s.Kind {
	case ShapeRect:
		if !(s.W > 0) || !(s.H > 0) {
			return fmt.Errorf("rect size %vx%v must be positive", s.W, s.H)
		}
	case ShapeCircle:
		if !(s.R > 0) {
			return fmt.Errorf("circle radius %v must be positive", s.R)
		}
	default:
		return fmt.Errorf("unknown shape %q", s.Kind)
	}
	return nil
}

// Overlaps reports whether a circle of radius r at p intersects the shape
// Touching edges do not count
func (s Shape) Overlaps(p core.Vec2, r float64) bool {
	switch s.Kind {
	case ShapeRect:
		hw, hh := s.W/2, s.H/2
		nearest := core.V(
			math.Max(s.X-hw, math.Min(p.X, s.X+hw)),
			math.Max(s.Y-hh, math.Min(p.Y, s.Y+hh)),
		)
		return p.Sub(nearest).Len() < r
	case ShapeCircle:
		return p.Sub(core.V(s.X, s.Y)).Len() < r+s.R
	}
	return false
}
