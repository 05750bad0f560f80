package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
)

// ErrInvalidScenario wraps every load and validation failure
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario describes one grid world, its obstacles and the route to plan
type Scenario struct {
	Algorithm string     `toml:"algorithm"`
	Start     [2]float64 `toml:"start"`
	Target    [2]float64 `toml:"target"`

	Grid      GridSection `toml:"grid"`
	Obstacles []Shape     `toml:"obstacles"`
	Maze      MazeSection `toml:"maze"`
}

// GridSection maps onto grid.Config
type GridSection struct {
	Width      float64    `toml:"width"`
	Height     float64    `toml:"height"`
	CellRadius float64    `toml:"cell_radius"`
	Spacing    float64    `toml:"spacing"`
	Origin     [2]float64 `toml:"origin"`
}

// MazeSection fills the grid with a generated maze, one maze cell per grid cell
type MazeSection struct {
	Enabled  bool    `toml:"enabled"`
	Seed     int64   `toml:"seed"`
	Braiding float64 `toml:"braiding"`
}

// Default returns the built-in scenario: a 20x12 world split by two staggered walls
func Default() *Scenario {
	return &Scenario{
		Algorithm: navigation.AStar.String(),
		Start:     [2]float64{-9, -5},
		Target:    [2]float64{9, 5},
		Grid: GridSection{
			Width:      20,
			Height:     12,
			CellRadius: 0.5,
			Spacing:    0.1,
		},
		Obstacles: []Shape{
			{Kind: ShapeRect, X: -3, Y: 1, W: 1, H: 10},
			{Kind: ShapeRect, X: 3, Y: -1, W: 1, H: 10},
			{Kind: ShapeCircle, X: 7, Y: 1, R: 1.5},
		},
	}
}

// Parse decodes TOML over the defaults, keys absent from data keep their default value
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	defaults := s.Obstacles
	// Decoding reuses slice storage, so listed obstacles must not land on top of the defaults
	s.Obstacles = nil

	md, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if !md.IsDefined("obstacles") {
		s.Obstacles = defaults
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScenario, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes the scenario as TOML
func (s *Scenario) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Validate checks the algorithm name, grid geometry, shapes and maze settings
func (s *Scenario) Validate() error {
	if _, err := navigation.ParseAlgorithm(s.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	points := []struct {
		name string
		p    [2]float64
	}{{"start", s.Start}, {"target", s.Target}, {"grid origin", s.Grid.Origin}}
	for _, pt := range points {
		if !finite(pt.p[0]) || !finite(pt.p[1]) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidScenario, pt.name, pt.p)
		}
	}
	if err := s.GridConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	for i, shape := range s.Obstacles {
		if err := shape.validate(); err != nil {
			return fmt.Errorf("%w: obstacle %d: %w", ErrInvalidScenario, i, err)
		}
	}
	if s.Maze.Braiding < 0 || s.Maze.Braiding > 1 {
		return fmt.Errorf("%w: maze braiding %v outside [0,1]", ErrInvalidScenario, s.Maze.Braiding)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AlgorithmValue returns the parsed algorithm
func (s *Scenario) AlgorithmValue() (navigation.Algorithm, error) {
	return navigation.ParseAlgorithm(s.Algorithm)
}

// GridConfig converts the grid section
func (s *Scenario) GridConfig() grid.Config {
	return grid.Config{
		Origin:     core.V(s.Grid.Origin[0], s.Grid.Origin[1]),
		WorldSize:  core.V(s.Grid.Width, s.Grid.Height),
		CellRadius: s.Grid.CellRadius,
		Spacing:    s.Grid.Spacing,
	}
}

// StartPos and TargetPos return the route endpoints in world space
func (s *Scenario) StartPos() core.Vec2  { return core.V(s.Start[0], s.Start[1]) }
func (s *Scenario) TargetPos() core.Vec2 { return core.V(s.Target[0], s.Target[1]) }
