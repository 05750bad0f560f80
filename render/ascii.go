package render

import (
	"strings"

	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
)

// ASCII glyphs
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
	GlyphVisited  = 'o'
	GlyphPath     = '*'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
)

// ASCII renders the grid top row first, one glyph per cell, with the result's order and path overlaid
// res may be the zero Result to draw the bare grid
func ASCII(g *grid.Grid, res navigation.Result) string {
	visited := make(map[*grid.Cell]bool, len(res.Order))
	for _, c := range res.Order {
		visited[c] = true
	}
	onPath := make(map[*grid.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}

	sx, sy := g.Size()
	var sb strings.Builder
	sb.Grow((sx + 1) * sy)
	for y := sy - 1; y >= 0; y-- {
		for x := 0; x < sx; x++ {
			c := g.Cell(x, y)
			switch {
			case c == res.Start || (res.Start == nil && c.IsStart):
				sb.WriteByte(GlyphStart)
			case c == res.Target || (res.Target == nil && c.IsEnd):
				sb.WriteByte(GlyphEnd)
			case onPath[c]:
				sb.WriteByte(GlyphPath)
			case visited[c]:
				sb.WriteByte(GlyphVisited)
			case !c.Walkable:
				sb.WriteByte(GlyphObstacle)
			default:
				sb.WriteByte(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
