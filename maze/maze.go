package maze

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
)

// Config controls maze generation
type Config struct {
	// Width/Height in maze cells, rounded down to odd and at least 3
	Width, Height int

	// Braiding: 0.0 keeps a perfect maze (tree), 1.0 tries to loop every dead end
	// Plaza and pillar constraints take precedence
	Braiding float64

	// Seed for the layout RNG, 0 picks one from the clock
	Seed int64
}

// Layout is a generated maze, row 0 at the bottom like the grid
type Layout struct {
	Width, Height int
	Start, End    core.Point
	Seed          int64 // Seed actually used

	walls []bool // Row-major: y*Width + x
}

// Generate carves a recursive-backtracker maze and optionally braids it
func Generate(cfg Config) *Layout {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	l := &Layout{
		Width:  oddAtLeast3(cfg.Width),
		Height: oddAtLeast3(cfg.Height),
		Seed:   seed,
	}
	l.walls = make([]bool, l.Width*l.Height)
	for i := range l.walls {
		l.walls[i] = true
	}
	l.Start = core.Point{X: 1, Y: 1}
	l.End = core.Point{X: l.Width - 2, Y: l.Height - 2}

	l.carve(l.Start, rng)
	if cfg.Braiding > 0 {
		l.braid(cfg.Braiding, rng)
	}
	return l
}

// InBounds reports whether (x,y) lies inside the layout
func (l *Layout) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// Wall reports whether (x,y) is solid; everything outside the layout is solid
func (l *Layout) Wall(x, y int) bool {
	if !l.InBounds(x, y) {
		return true
	}
	return l.walls[y*l.Width+x]
}

func (l *Layout) open(x, y int) {
	l.walls[y*l.Width+x] = false
}

// DeadEnds counts passage rooms with a single exit
func (l *Layout) DeadEnds() int {
	n := 0
	for y := 1; y < l.Height-1; y += 2 {
		for x := 1; x < l.Width-1; x += 2 {
			if !l.Wall(x, y) && l.exits(x, y) == 1 {
				n++
			}
		}
	}
	return n
}

func (l *Layout) exits(x, y int) int {
	n := 0
	for _, d := range orthogonal {
		if !l.Wall(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// ObstacleFunc maps a grid's world space onto the layout, one maze cell per grid cell
// Maze cell (0,0) sits on the grid's bottom-left cell; points past the layout are walls
func (l *Layout) ObstacleFunc(cfg grid.Config) grid.ObstacleFunc {
	bottomLeft := cfg.BottomLeft()
	d := cfg.Diameter()
	return func(p core.Vec2) bool {
		local := p.Sub(bottomLeft)
		x := int(math.Floor(local.X / d))
		y := int(math.Floor(local.Y / d))
		return l.Wall(x, y)
	}
}

// GridConfig returns a config whose lattice matches the layout cell for cell
func (l *Layout) GridConfig(origin core.Vec2, cellRadius float64) grid.Config {
	d := cellRadius * 2
	return grid.Config{
		Origin:     origin,
		WorldSize:  core.V(float64(l.Width)*d, float64(l.Height)*d),
		CellRadius: cellRadius,
	}
}

func oddAtLeast3(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
