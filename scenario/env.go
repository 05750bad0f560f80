package scenario

import (
	"os"
	"strconv"
)

// ApplyEnv overrides scenario values from environment variables
// Malformed values are ignored
func (s *Scenario) ApplyEnv() {
	if algo := os.Getenv("PATHFINDER_ALGORITHM"); algo != "" {
		s.Algorithm = algo
	}

	if radius := os.Getenv("PATHFINDER_CELL_RADIUS"); radius != "" {
		if val, err := strconv.ParseFloat(radius, 64); err == nil && val > 0 {
			s.Grid.CellRadius = val
		}
	}

	// Setting a seed turns the maze on
	if seed := os.Getenv("PATHFINDER_MAZE_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			s.Maze.Seed = val
			s.Maze.Enabled = true
		}
	}
}
