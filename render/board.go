package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
)

// CellWidth is the number of terminal columns per grid cell, keeping cells roughly square
const CellWidth = 2

// Board draws a grid into a tcell screen with row 0 at the bottom
// Reveal overlays are keyed by cell pointer, Reset after the grid is rebuilt
type Board struct {
	screen tcell.Screen

	// OffsetX/OffsetY place the board's top-left corner on screen
	OffsetX, OffsetY int

	overlay map[*grid.Cell]navigation.RevealKind
	cursor  core.Point
	showCur bool
	status  string
	help    string
}

func NewBoard(screen tcell.Screen) *Board {
	return &Board{
		screen:  screen,
		overlay: make(map[*grid.Cell]navigation.RevealKind),
	}
}

// Reset drops every revealed cell
func (b *Board) Reset() {
	clear(b.overlay)
}

// Reveal paints one replay step
func (b *Board) Reveal(ev navigation.RevealEvent) {
	b.overlay[ev.Cell] = ev.Kind
}

// ShowResult reveals the whole visitation order at once
func (b *Board) ShowResult(res navigation.Result) {
	for ev := range res.Reveal() {
		b.Reveal(ev)
	}
}

// Revealed returns the overlay kind of c
func (b *Board) Revealed(c *grid.Cell) (navigation.RevealKind, bool) {
	kind, ok := b.overlay[c]
	return kind, ok
}

func (b *Board) SetCursor(p core.Point) {
	b.cursor = p
	b.showCur = true
}

func (b *Board) HideCursor() {
	b.showCur = false
}

func (b *Board) SetStatus(s string) {
	b.status = s
}

func (b *Board) StatusText() string {
	return b.status
}

// SetHelp sets the key hint drawn under the status line
func (b *Board) SetHelp(s string) {
	b.help = s
}

// ScreenPos maps grid coordinates to the screen column/row of the cell's left half
func (b *Board) ScreenPos(g *grid.Grid, p core.Point) (x, y int) {
	_, sy := g.Size()
	return b.OffsetX + p.X*CellWidth, b.OffsetY + (sy - 1 - p.Y)
}

// GridPos maps a screen position back to grid coordinates
func (b *Board) GridPos(g *grid.Grid, x, y int) (core.Point, bool) {
	_, sy := g.Size()
	if x < b.OffsetX || y < b.OffsetY {
		return core.Point{}, false
	}
	p := core.Point{X: (x - b.OffsetX) / CellWidth, Y: sy - 1 - (y - b.OffsetY)}
	return p, g.InBounds(p.X, p.Y)
}

// Draw repaints the whole board and status line and shows the screen
func (b *Board) Draw(g *grid.Grid) {
	b.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))

	for c := range g.Cells() {
		kind, revealed := b.overlay[c]
		color := CellColor(c, kind, revealed)
		style := tcell.StyleDefault.Background(color).Foreground(RgbCursor)

		x, y := b.ScreenPos(g, c.Pos)
		left, right := ' ', ' '
		if b.showCur && c.Pos == b.cursor {
			left, right = '[', ']'
		}
		b.screen.SetContent(x, y, left, nil, style)
		b.screen.SetContent(x+1, y, right, nil, style)
	}

	_, sy := g.Size()
	statusStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	drawText(b.screen, b.OffsetX, b.OffsetY+sy, b.status, statusStyle)
	drawText(b.screen, b.OffsetX, b.OffsetY+sy+1, b.help, statusStyle.Foreground(RgbVisited))

	b.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// StatusLine formats the run summary shown under the board
func StatusLine(res navigation.Result) string {
	ms := float64(res.Elapsed.Microseconds()) / 1000
	line := fmt.Sprintf("%s | Nodes Visited: %d in %.2fms", res.Algorithm.Label(), len(res.Order), ms)
	if !res.Found {
		return line + " | no path"
	}
	return fmt.Sprintf("%s | cost %d", line, res.Cost)
}
