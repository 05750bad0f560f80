package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/status"
)

func TestNewSelector_RejectsInvalid(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	_, err := NewSelector(g, Algorithm(9))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	s, err := NewSelector(g, BFS)
	require.NoError(t, err)
	assert.Equal(t, BFS, s.Active())
	assert.ErrorIs(t, s.Select(algorithmCount), ErrUnknownAlgorithm)
	assert.Equal(t, BFS, s.Active(), "failed select keeps the previous algorithm")
}

func TestSelector_SelectRebuildsGrid(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	s, err := NewSelector(g, AStar)
	require.NoError(t, err)

	s.Update(func(g *grid.Grid) {
		g.Toggle(g.Cell(2, 2))
		g.MarkStart(g.Cell(0, 0))
		g.MarkEnd(g.Cell(4, 4))
	})
	before := g.Generation()
	old := g.Cell(2, 2)

	// Re-selecting the active algorithm still rebuilds
	require.NoError(t, s.Select(AStar))
	assert.Equal(t, before+1, g.Generation())
	require.NoError(t, s.Select(Dijkstra))
	assert.Equal(t, before+2, g.Generation())
	assert.Equal(t, Dijkstra, s.Active())

	s.View(func(g *grid.Grid) {
		assert.NotSame(t, old, g.Cell(2, 2))
		assert.False(t, g.Cell(2, 2).Walkable)
		assert.Same(t, g.Cell(0, 0), g.Start())
		assert.Same(t, g.Cell(4, 4), g.End())
	})
}

func TestSelector_PathfinderCache(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	s, err := NewSelector(g, DFS)
	require.NoError(t, err)

	pf := s.Pathfinder()
	assert.Equal(t, DFS, pf.Algorithm())
	assert.Equal(t, pf, s.Pathfinder())

	require.NoError(t, s.Select(BFS))
	assert.Equal(t, BFS, s.Pathfinder().Algorithm())
}

func TestSelector_FindPathByWorldPosition(t *testing.T) {
	g := newTestGrid(t, 6, 4)
	s, err := NewSelector(g, AStar)
	require.NoError(t, err)

	// Points outside the world clamp to the corner cells
	res, wps := s.FindPath(core.V(-100, -100), core.V(100, 100))
	require.True(t, res.Found)
	assert.Equal(t, core.Point{X: 0, Y: 0}, res.Start.Pos)
	assert.Equal(t, core.Point{X: 5, Y: 3}, res.Target.Pos)
	require.Len(t, wps, len(res.Path))
	assert.Equal(t, res.Start.World, wps[0])
	assert.Equal(t, res.Target.World, wps[len(wps)-1])
	assert.Equal(t, Distance(res.Start.Pos, res.Target.Pos), res.Cost)
}

func TestSelector_FindMarked(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	s, err := NewSelector(g, BFS)
	require.NoError(t, err)

	_, _, ok := s.FindMarked()
	assert.False(t, ok)

	s.Update(func(g *grid.Grid) {
		require.True(t, g.MarkStart(g.Cell(0, 3)))
		require.True(t, g.MarkEnd(g.Cell(3, 0)))
	})
	res, wps, ok := s.FindMarked()
	require.True(t, ok)
	assert.True(t, res.Found)
	assert.Equal(t, BFS, res.Algorithm)
	assert.Len(t, wps, 4)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"astar":         AStar,
		"A*":            AStar,
		" a-star ":      AStar,
		"Dijkstra":      Dijkstra,
		"bfs":           BFS,
		"Breadth-First": BFS,
		"DFS":           DFS,
		"depth_first":   DFS,
		"0":             AStar,
		"3":             DFS,
	}
	for in, expected := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, got, in)
	}

	for _, bad := range []string{"", "4", "-1", "greedy"} {
		_, err := ParseAlgorithm(bad)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm, bad)
	}
}

func TestAlgorithm_Names(t *testing.T) {
	for _, a := range Algorithms() {
		assert.True(t, a.Valid())
		parsed, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)

		pf, err := New(a)
		require.NoError(t, err)
		assert.Equal(t, a, pf.Algorithm())
	}
	assert.Equal(t, "A*", AStar.Label())
	assert.Equal(t, "algorithm(7)", Algorithm(7).String())

	_, err := New(Algorithm(7))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSelector_RecordsMetrics(t *testing.T) {
	g := newTestGrid(t, 5, 3, core.Point{X: 2, Y: 0}, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2})
	s, err := NewSelector(g, BFS)
	require.NoError(t, err)

	// Searches before attaching are not counted
	s.FindPath(core.V(-2, 0), core.V(2, 0))

	reg := status.NewRegistry()
	s.SetMetrics(reg)
	res, _ := s.FindPath(core.V(-2, 0), core.V(-1, 0))
	require.True(t, res.Found)
	unreachable, _ := s.FindPath(core.V(-2, 0), core.V(2, 0))
	require.False(t, unreachable.Found)
	require.NoError(t, s.Select(AStar))

	assert.Equal(t, int64(2), reg.Ints.Get("search.bfs.runs").Load())
	assert.Equal(t, int64(1), reg.Ints.Get("search.bfs.unreachable").Load())
	assert.Equal(t, int64(len(res.Order)+len(unreachable.Order)), reg.Ints.Get("search.bfs.visited").Load())
	assert.Equal(t, int64(1), reg.Ints.Get("grid.rebuilds").Load())
	assert.True(t, reg.Floats.Has("search.bfs.ms"))
	assert.False(t, reg.Ints.Has("search.astar.runs"))
}

func TestSelector_FindPathKeepsSingleStartAndEnd(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	s, err := NewSelector(g, AStar)
	require.NoError(t, err)

	first, _ := s.FindPath(core.V(-2, -2), core.V(2, 2))
	require.True(t, first.Found)
	second, _ := s.FindPath(core.V(2, -2), core.V(-2, 2))
	require.True(t, second.Found)

	starts, ends := 0, 0
	s.View(func(g *grid.Grid) {
		for c := range g.Cells() {
			if c.IsStart {
				starts++
			}
			if c.IsEnd {
				ends++
			}
		}
	})
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)

	// The marked pair is the latest route, not a mix of both
	res, _, ok := s.FindMarked()
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 4, Y: 0}, res.Start.Pos)
	assert.Equal(t, core.Point{X: 0, Y: 4}, res.Target.Pos)

	// A failed search leaves the previous flags alone
	s.Update(func(g *grid.Grid) {
		for x := 0; x < 5; x++ {
			g.Cell(x, 2).Walkable = false
		}
	})
	miss, _ := s.FindPath(core.V(-2, -2), core.V(-2, 2))
	require.False(t, miss.Found)
	s.View(func(g *grid.Grid) {
		assert.Equal(t, core.Point{X: 4, Y: 0}, g.Start().Pos)
		assert.Equal(t, core.Point{X: 0, Y: 4}, g.End().Pos)
	})
}
