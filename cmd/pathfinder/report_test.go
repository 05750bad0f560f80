package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pathfinder/navigation"
	"github.com/lixenwraith/pathfinder/scenario"
)

func newDefaultSelector(t *testing.T) (*navigation.Selector, *scenario.Scenario) {
	t.Helper()
	sc := scenario.Default()
	g, err := sc.Build()
	require.NoError(t, err)
	sel, err := navigation.NewSelector(g, navigation.AStar)
	require.NoError(t, err)
	return sel, sc
}

func TestCompare_AllAlgorithms(t *testing.T) {
	sel, sc := newDefaultSelector(t)
	rows := compare(sel, sc.StartPos(), sc.TargetPos(), navigation.Algorithms())
	require.Len(t, rows, 4)

	for i, r := range rows {
		a := navigation.Algorithms()[i]
		assert.Equal(t, a, r.result.Algorithm)
		require.True(t, r.result.Found, a.String())
		assert.Len(t, r.waypoints, len(r.result.Path))
		assert.GreaterOrEqual(t, r.result.Cost, r.optimal, a.String())
		if a == navigation.AStar || a == navigation.Dijkstra {
			assert.Equal(t, r.optimal, r.result.Cost, a.String())
		}
	}
	assert.Equal(t, navigation.DFS, sel.Active(), "last algorithm stays selected")
}

func TestWriteTable(t *testing.T) {
	sel, sc := newDefaultSelector(t)
	rows := compare(sel, sc.StartPos(), sc.TargetPos(), []navigation.Algorithm{navigation.AStar, navigation.BFS})

	var buf bytes.Buffer
	writeTable(&buf, rows)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "algorithm"))
	assert.True(t, strings.HasPrefix(lines[1], "A*"))
	assert.True(t, strings.HasPrefix(lines[2], "Breadth-First"))
	assert.Contains(t, lines[1], "true")
}

func TestWriteDetail(t *testing.T) {
	sel, sc := newDefaultSelector(t)
	rows := compare(sel, sc.StartPos(), sc.TargetPos(), []navigation.Algorithm{navigation.AStar})

	var buf bytes.Buffer
	writeDetail(&buf, sel, rows[0])
	out := buf.String()

	assert.Contains(t, out, "A* | Nodes Visited:")
	assert.Contains(t, out, "waypoints (")
	assert.Contains(t, out, "(-8.50,-4.50)", "first waypoint is the start cell center")
	assert.Equal(t, 1, strings.Count(out, "S"))
	assert.Equal(t, 1, strings.Count(out, "E"))
	assert.Contains(t, out, "#")
}

func TestWriteDetail_NoRoute(t *testing.T) {
	sel, sc := newDefaultSelector(t)
	// Wall off the target with a full column
	sc.Obstacles = append(sc.Obstacles, scenario.Shape{Kind: scenario.ShapeRect, X: 8, Y: 0, W: 0.5, H: 20})
	g, err := sc.Build()
	require.NoError(t, err)
	sel, err = navigation.NewSelector(g, navigation.BFS)
	require.NoError(t, err)

	rows := compare(sel, sc.StartPos(), sc.TargetPos(), []navigation.Algorithm{navigation.BFS})
	require.False(t, rows[0].result.Found)
	assert.Equal(t, -1, rows[0].optimal)

	var buf bytes.Buffer
	writeDetail(&buf, sel, rows[0])
	assert.Contains(t, buf.String(), "| no path")
	assert.Contains(t, buf.String(), "no route between start and target")

	buf.Reset()
	writeTable(&buf, rows)
	assert.Contains(t, buf.String(), "false")
}
