package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
)

// Board palette
var (
	RgbFree      = tcell.NewRGBColor(235, 235, 235) // White
	RgbObstacle  = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbEndpoint  = tcell.NewRGBColor(255, 0, 255)   // Magenta for start/end
	RgbVisited   = tcell.NewRGBColor(128, 128, 128) // Grey
	RgbPath      = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbCursor    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusBar = tcell.NewRGBColor(255, 255, 255) // White

	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
)

// CellColor resolves the paint for one cell: overlay wins over flags, flags over walkability
func CellColor(c *grid.Cell, overlay navigation.RevealKind, revealed bool) tcell.Color {
	if revealed {
		switch overlay {
		case navigation.RevealEndpoint:
			return RgbEndpoint
		case navigation.RevealPath:
			return RgbPath
		default:
			return RgbVisited
		}
	}
	switch {
	case c.IsStart || c.IsEnd:
		return RgbEndpoint
	case !c.Walkable:
		return RgbObstacle
	default:
		return RgbFree
	}
}

// toRGBA converts a tcell color for image output
func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
