package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
)

func passages(l *Layout) int {
	n := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if !l.Wall(x, y) {
				n++
			}
		}
	}
	return n
}

func TestGenerate_Dimensions(t *testing.T) {
	l := Generate(Config{Width: 10, Height: 8, Seed: 1})
	assert.Equal(t, 9, l.Width)
	assert.Equal(t, 7, l.Height)
	assert.Equal(t, core.Point{X: 1, Y: 1}, l.Start)
	assert.Equal(t, core.Point{X: 7, Y: 5}, l.End)

	tiny := Generate(Config{Width: 1, Height: 0, Seed: 1})
	assert.Equal(t, 3, tiny.Width)
	assert.Equal(t, 3, tiny.Height)
	assert.False(t, tiny.Wall(1, 1))
	assert.True(t, tiny.Wall(-1, 0))
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(Config{Width: 31, Height: 21, Braiding: 0.4, Seed: 99})
	b := Generate(Config{Width: 31, Height: 21, Braiding: 0.4, Seed: 99})
	assert.Equal(t, a.walls, b.walls)
	assert.Equal(t, int64(99), a.Seed)

	c := Generate(Config{Width: 31, Height: 21, Braiding: 0.4, Seed: 100})
	assert.NotEqual(t, a.walls, c.walls)

	random := Generate(Config{Width: 5, Height: 5})
	assert.NotZero(t, random.Seed)
}

func TestGenerate_SolidBorderAndOpenEnds(t *testing.T) {
	l := Generate(Config{Width: 25, Height: 15, Braiding: 1, Seed: 3})
	for x := 0; x < l.Width; x++ {
		assert.True(t, l.Wall(x, 0))
		assert.True(t, l.Wall(x, l.Height-1))
	}
	for y := 0; y < l.Height; y++ {
		assert.True(t, l.Wall(0, y))
		assert.True(t, l.Wall(l.Width-1, y))
	}
	assert.False(t, l.Wall(l.Start.X, l.Start.Y))
	assert.False(t, l.Wall(l.End.X, l.End.Y))
}

func TestGenerate_PerfectMazeIsSpanningTree(t *testing.T) {
	l := Generate(Config{Width: 21, Height: 17, Seed: 5})

	// Every odd room is carved
	for y := 1; y < l.Height; y += 2 {
		for x := 1; x < l.Width; x += 2 {
			assert.False(t, l.Wall(x, y), "room %d,%d", x, y)
		}
	}

	// Connected and acyclic: edges == nodes-1
	edges := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.Wall(x, y) {
				continue
			}
			if !l.Wall(x+1, y) {
				edges++
			}
			if !l.Wall(x, y+1) {
				edges++
			}
		}
	}
	assert.Equal(t, passages(l)-1, edges)
}

func TestGenerate_BraidingKeepsTopology(t *testing.T) {
	perfect := Generate(Config{Width: 41, Height: 31, Seed: 11})
	braided := Generate(Config{Width: 41, Height: 31, Braiding: 1, Seed: 11})

	assert.Less(t, braided.DeadEnds(), perfect.DeadEnds())
	assert.Greater(t, passages(braided), passages(perfect))

	// Braiding only opens walls, and never the even-even corner posts
	for y := 0; y < braided.Height; y++ {
		for x := 0; x < braided.Width; x++ {
			if !perfect.Wall(x, y) {
				assert.False(t, braided.Wall(x, y), "%d,%d closed by braiding", x, y)
			}
			if x%2 == 0 && y%2 == 0 {
				assert.True(t, braided.Wall(x, y), "post %d,%d opened", x, y)
			}
		}
	}

	for y := 0; y < braided.Height-1; y++ {
		for x := 0; x < braided.Width-1; x++ {
			plaza := !braided.Wall(x, y) && !braided.Wall(x+1, y) && !braided.Wall(x, y+1) && !braided.Wall(x+1, y+1)
			assert.False(t, plaza, "2x2 plaza at %d,%d", x, y)
		}
	}
}

func TestObstacleFunc_MatchesGridCellForCell(t *testing.T) {
	l := Generate(Config{Width: 15, Height: 11, Braiding: 0.3, Seed: 21})
	cfg := l.GridConfig(core.V(3, -2), 0.5)

	g, err := grid.New(cfg, l.ObstacleFunc(cfg))
	require.NoError(t, err)

	sx, sy := g.Size()
	require.Equal(t, l.Width, sx)
	require.Equal(t, l.Height, sy)
	for c := range g.Cells() {
		assert.Equal(t, !l.Wall(c.X(), c.Y()), c.Walkable, "cell %v", c.Pos)
	}

	// Points beyond the layout read as walls
	isObstacle := l.ObstacleFunc(cfg)
	assert.True(t, isObstacle(core.V(-100, 0)))

	res := navigation.BFSSearch{}.FindPath(g, g.Cell(l.Start.X, l.Start.Y), g.Cell(l.End.X, l.End.Y))
	assert.True(t, res.Found)
}
