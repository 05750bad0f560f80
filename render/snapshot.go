package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
)

// Snapshot draws the grid, visitation order and path into an image, scale pixels per cell
// Cell spacing becomes a gap of background between squares; row 0 is the bottom row
func Snapshot(g *grid.Grid, res navigation.Result, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	sx, sy := g.Size()
	s := float64(scale)

	cfg := g.Config()
	gap := cfg.Spacing / cfg.Diameter() * s / 2

	dc := gg.NewContext(sx*scale, sy*scale)
	dc.SetColor(toRGBA(RgbBackground))
	dc.Clear()

	overlay := make(map[*grid.Cell]navigation.RevealKind, len(res.Order))
	for ev := range res.Reveal() {
		overlay[ev.Cell] = ev.Kind
	}

	for c := range g.Cells() {
		kind, revealed := overlay[c]
		dc.SetColor(toRGBA(CellColor(c, kind, revealed)))
		px, py := pixelOrigin(c, sy, s)
		dc.DrawRectangle(px+gap, py+gap, s-2*gap, s-2*gap)
		dc.Fill()
	}

	if len(res.Path) > 1 {
		dc.SetColor(toRGBA(RgbPath))
		dc.SetLineWidth(s / 4)
		for i, c := range res.Path {
			px, py := pixelOrigin(c, sy, s)
			if i == 0 {
				dc.MoveTo(px+s/2, py+s/2)
			} else {
				dc.LineTo(px+s/2, py+s/2)
			}
		}
		dc.Stroke()
	}

	// Endpoints on top of the route line
	for _, c := range []*grid.Cell{res.Start, res.Target} {
		if c == nil {
			continue
		}
		px, py := pixelOrigin(c, sy, s)
		dc.SetColor(toRGBA(RgbEndpoint))
		dc.DrawCircle(px+s/2, py+s/2, s/2-gap)
		dc.Fill()
	}

	return dc.Image()
}

func pixelOrigin(c *grid.Cell, sizeY int, scale float64) (x, y float64) {
	return float64(c.X()) * scale, float64(sizeY-1-c.Y()) * scale
}

// SavePNG writes Snapshot to path
func SavePNG(path string, g *grid.Grid, res navigation.Result, scale int) error {
	img := Snapshot(g, res, scale)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
