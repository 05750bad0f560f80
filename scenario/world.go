package scenario

import (
	"log"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/maze"
)

// MazeLayout generates the maze sized to the grid, nil when the maze is disabled
// With seed 0 every call yields a different layout
func (s *Scenario) MazeLayout() *maze.Layout {
	if !s.Maze.Enabled {
		return nil
	}
	sx, sy := s.GridConfig().Dimensions()
	return maze.Generate(maze.Config{
		Width:    sx,
		Height:   sy,
		Braiding: s.Maze.Braiding,
		Seed:     s.Maze.Seed,
	})
}

// ObstacleFunc combines the maze layout (if any) with a circle cast of cell radius against every shape
// The maze is generated once so rebuilds see the same layout
func (s *Scenario) ObstacleFunc() grid.ObstacleFunc {
	cfg := s.GridConfig()
	radius := cfg.CellRadius
	shapes := append([]Shape(nil), s.Obstacles...)

	var inMaze grid.ObstacleFunc
	if layout := s.MazeLayout(); layout != nil {
		inMaze = layout.ObstacleFunc(cfg)
		log.Printf("scenario: maze %dx%d seed %d, %d dead ends", layout.Width, layout.Height, layout.Seed, layout.DeadEnds())
	}

	return func(p core.Vec2) bool {
		if inMaze != nil && inMaze(p) {
			return true
		}
		for _, shape := range shapes {
			if shape.Overlaps(p, radius) {
				return true
			}
		}
		return false
	}
}

// Build validates the scenario and lays out its grid
func (s *Scenario) Build() (*grid.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(s.GridConfig(), s.ObstacleFunc())
	if err != nil {
		return nil, err
	}
	sx, sy := g.Size()
	log.Printf("scenario: grid %dx%d (%d cells), %d obstacles", sx, sy, g.Len(), len(s.Obstacles))
	return g, nil
}
