package navigation

import (
	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
)

// ToWaypoints maps each path cell to its world position for a movement consumer
// The first cell is flagged start and the last end; repeated calls are harmless
func ToWaypoints(path []*grid.Cell) []core.Vec2 {
	if len(path) == 0 {
		return nil
	}
	path[0].IsStart = true
	path[len(path)-1].IsEnd = true

	waypoints := make([]core.Vec2, len(path))
	for i, c := range path {
		waypoints[i] = c.World
	}
	return waypoints
}

// Waypoints is ToWaypoints over the result path
func (r Result) Waypoints() []core.Vec2 {
	return ToWaypoints(r.Path)
}
