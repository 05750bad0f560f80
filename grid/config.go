package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/pathfinder/core"
)

// ErrInvalidConfig is returned when grid dimensions cannot produce at least one cell
var ErrInvalidConfig = errors.New("invalid grid config")

// Config is static per grid instance
type Config struct {
	// Origin is the world-space center of the grid
	Origin core.Vec2

	// WorldSize is the width/height covered by the grid in world units
	WorldSize core.Vec2

	// CellRadius is half the cell diameter
	CellRadius float64

	// Spacing is the visual gap between drawn cells, layout is unaffected
	Spacing float64
}

// Diameter returns the cell edge length
func (c Config) Diameter() float64 {
	return c.CellRadius * 2
}

// Dimensions returns cell counts per axis: round(worldSize / diameter)
func (c Config) Dimensions() (sizeX, sizeY int) {
	d := c.Diameter()
	return int(math.RoundToEven(c.WorldSize.X / d)), int(math.RoundToEven(c.WorldSize.Y / d))
}

// Validate checks that the config yields a non-empty grid
func (c Config) Validate() error {
	if !(c.CellRadius > 0) || math.IsInf(c.CellRadius, 0) {
		return fmt.Errorf("%w: cell radius %v must be positive", ErrInvalidConfig, c.CellRadius)
	}
	if !(c.WorldSize.X > 0) || !(c.WorldSize.Y > 0) || math.IsInf(c.WorldSize.X, 0) || math.IsInf(c.WorldSize.Y, 0) {
		return fmt.Errorf("%w: world size %vx%v must be positive", ErrInvalidConfig, c.WorldSize.X, c.WorldSize.Y)
	}
	if !(c.Spacing >= 0) || c.Spacing >= c.Diameter() {
		return fmt.Errorf("%w: spacing %v outside [0,%v)", ErrInvalidConfig, c.Spacing, c.Diameter())
	}
	sx, sy := c.Dimensions()
	if sx < 1 || sy < 1 {
		return fmt.Errorf("%w: %vx%v world fits no %v-wide cell", ErrInvalidConfig, c.WorldSize.X, c.WorldSize.Y, c.Diameter())
	}
	return nil
}

// BottomLeft returns the world-space corner the lattice is laid out from
func (c Config) BottomLeft() core.Vec2 {
	return c.Origin.Sub(c.WorldSize.Scale(0.5))
}
