package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/0x0FACED/go-fortune-dcel/pkg/clip"
	"github.com/0x0FACED/go-fortune-dcel/pkg/voronoi"
)

// palette for cell fills, cycled by face index
var palette = [][3]float64{
	{0.56, 0.74, 0.86},
	{0.98, 0.80, 0.55},
	{0.70, 0.87, 0.54},
	{0.98, 0.60, 0.60},
	{0.79, 0.70, 0.84},
	{1.00, 1.00, 0.70},
	{0.65, 0.81, 0.89},
	{0.99, 0.75, 0.44},
}

// PNG draws the diagram scaled into a width x height image: filled cells
// (when closed), edges and sites. The y axis points up as in the sweep.
func PNG(w io.Writer, sites []voronoi.Point, d *clip.Diagram, bbox clip.BoundingBox, width, height int) error {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	sx := float64(width) / (bbox.Xr - bbox.Xl)
	sy := float64(height) / (bbox.Yt - bbox.Yb)
	scale := math.Min(sx, sy)
	project := func(p voronoi.Point) (float64, float64) {
		return (p.X - bbox.Xl) * scale, float64(height) - (p.Y-bbox.Yb)*scale
	}

	for _, cell := range d.Cells {
		if len(cell.Polygon) < 3 {
			continue
		}
		c := palette[int(cell.Face)%len(palette)]
		dc.SetRGBA(c[0], c[1], c[2], 0.8)
		for i, p := range cell.Polygon {
			x, y := project(p)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.Fill()
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1.5)
	for _, e := range d.Edges {
		x1, y1 := project(e.Va)
		x2, y2 := project(e.Vb)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	dc.SetRGB(0.8, 0.1, 0.1)
	for _, s := range sites {
		if !bbox.Contains(s) {
			continue
		}
		x, y := project(s)
		dc.DrawCircle(x, y, 3)
		dc.Fill()
	}
	return dc.EncodePNG(w)
}
