package navigation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownAlgorithm is returned for algorithm names or values outside the supported set
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm selects one of the search implementations
type Algorithm uint8

const (
	AStar Algorithm = iota
	Dijkstra
	BFS
	DFS

	algorithmCount
)

var algorithmNames = [algorithmCount]string{"astar", "dijkstra", "bfs", "dfs"}

var algorithmLabels = [algorithmCount]string{"A*", "Dijkstra", "Breadth-First", "Depth-First"}

// Algorithms lists every algorithm in selection order
func Algorithms() []Algorithm {
	return []Algorithm{AStar, Dijkstra, BFS, DFS}
}

// Valid reports whether a names a supported algorithm
func (a Algorithm) Valid() bool {
	return a < algorithmCount
}

// String returns the config/flag name
func (a Algorithm) String() string {
	if !a.Valid() {
		return "algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// Label returns the display name
func (a Algorithm) Label() string {
	if !a.Valid() {
		return a.String()
	}
	return algorithmLabels[a]
}

// ParseAlgorithm accepts config names, display labels and selection indices ("0".."3"), case-insensitive
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "a*", "a-star", "a_star":
		return AStar, nil
	case "breadth-first", "breadth_first":
		return BFS, nil
	case "depth-first", "depth_first":
		return DFS, nil
	}
	for i, name := range algorithmNames {
		if key == name {
			return Algorithm(i), nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 0 && n < int(algorithmCount) {
		return Algorithm(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// New returns a fresh pathfinder for a
func New(a Algorithm) (Pathfinder, error) {
	switch a {
	case AStar:
		return AStarSearch{}, nil
	case Dijkstra:
		return DijkstraSearch{}, nil
	case BFS:
		return BFSSearch{}, nil
	case DFS:
		return DFSSearch{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
}
