// Package clip turns the open half-edge mesh left by the sweep into finite
// segments inside a bounding box, and optionally closes every cell into a
// polygon along the box border.
package clip

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-fortune-dcel/pkg/voronoi"
)

// BoundingBox is an axis-aligned rectangle, y growing upwards.
type BoundingBox struct {
	Xl, Xr, Yb, Yt float64
}

func NewBoundingBox(xl, xr, yb, yt float64) BoundingBox {
	return BoundingBox{Xl: xl, Xr: xr, Yb: yb, Yt: yt}
}

func (b BoundingBox) Contains(p voronoi.Point) bool {
	return p.X >= b.Xl && p.X <= b.Xr && p.Y >= b.Yb && p.Y <= b.Yt
}

func (b BoundingBox) Area() float64 {
	return (b.Xr - b.Xl) * (b.Yt - b.Yb)
}

// Edge is the clipped part of one Voronoi edge, running from Va to Vb with
// LeftFace on its left.
type Edge struct {
	Va, Vb    voronoi.Point
	LeftFace  voronoi.Handle
	RightFace voronoi.Handle
	HalfEdge  voronoi.Handle // mesh half-edge running from Va to Vb
}

// Cell is the region of one site, clipped to the box. Polygon winds
// counter-clockwise; it is empty unless cells were closed.
type Cell struct {
	Site    voronoi.Point
	Face    voronoi.Handle
	Polygon []voronoi.Point
}

type Diagram struct {
	Box   BoundingBox
	Edges []Edge
	Cells []Cell
}

// Build clips every edge of m against bbox. With closeCells set, it also
// assembles each cell's boundary, walking the box border across the gaps
// left by unbounded edges.
func Build(m *voronoi.Mesh, bbox BoundingBox, closeCells bool) *Diagram {
	d := &Diagram{Box: bbox, Cells: make([]Cell, len(m.Faces))}
	for i, f := range m.Faces {
		d.Cells[i] = Cell{Site: f.Site, Face: voronoi.Handle(i)}
	}

	for h := 0; h+1 < len(m.HalfEdges); h += 2 {
		if edge, ok := clipEdge(m, voronoi.Handle(h), bbox); ok {
			d.Edges = append(d.Edges, edge)
		}
	}

	if closeCells {
		closeAll(d, bbox)
	}
	return d
}

// clipEdge extends the half-edge h along the bisector of its two sites up to
// the known vertices, then clips the result with Liang-Barsky.
func clipEdge(m *voronoi.Mesh, h voronoi.Handle, bbox BoundingBox) (Edge, bool) {
	he := m.HalfEdges[h]
	twin := m.HalfEdges[he.Twin]
	if he.Face == voronoi.NoHandle || twin.Face == voronoi.NoHandle {
		return Edge{}, false
	}
	l := m.Faces[he.Face].Site
	r := m.Faces[twin.Face].Site

	// the bisector, oriented so that l stays on the left
	mid := voronoi.Point{X: (l.X + r.X) / 2, Y: (l.Y + r.Y) / 2}
	dx, dy := -(r.Y - l.Y), r.X-l.X
	dd := dx*dx + dy*dy
	if dd == 0 {
		return Edge{}, false
	}
	param := func(v voronoi.Handle) float64 {
		p := m.Vertices[v].Point
		return ((p.X-mid.X)*dx + (p.Y-mid.Y)*dy) / dd
	}

	t0, t1 := math.Inf(-1), math.Inf(1)
	if he.Origin != voronoi.NoHandle {
		t0 = param(he.Origin)
	}
	if twin.Origin != voronoi.NoHandle {
		t1 = param(twin.Origin)
	}
	c0, c1, ok := liangBarsky(mid, dx, dy, t0, t1, bbox)
	if !ok {
		return Edge{}, false
	}

	at := func(t float64) voronoi.Point { return voronoi.Point{X: mid.X + t*dx, Y: mid.Y + t*dy} }
	va, vb := at(c0), at(c1)
	if c0 == t0 {
		va = m.Vertices[he.Origin].Point
	}
	if c1 == t1 {
		vb = m.Vertices[twin.Origin].Point
	}
	if equalWithEpsilon(va.X, vb.X) && equalWithEpsilon(va.Y, vb.Y) {
		return Edge{}, false
	}
	return Edge{Va: va, Vb: vb, LeftFace: he.Face, RightFace: twin.Face, HalfEdge: h}, true
}

// liangBarsky clips the parameter range [t0, t1] of the line mid + t*(dx, dy)
// to bbox.
func liangBarsky(mid voronoi.Point, dx, dy, t0, t1 float64, bbox BoundingBox) (float64, float64, bool) {
	if t0 > t1 {
		return 0, 0, false
	}
	checks := [4][2]float64{
		{-dx, mid.X - bbox.Xl}, // left
		{dx, bbox.Xr - mid.X},  // right
		{-dy, mid.Y - bbox.Yb}, // bottom
		{dy, bbox.Yt - mid.Y},  // top
	}
	for _, c := range checks {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, false
			} else if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, false
			} else if r < t1 {
				t1 = r
			}
		}
	}
	return t0, t1, true
}

type sideEdge struct {
	va, vb voronoi.Point
	angle  float64
}

func closeAll(d *Diagram, bbox BoundingBox) {
	perCell := make([][]sideEdge, len(d.Cells))
	for _, e := range d.Edges {
		l, r := d.Cells[e.LeftFace].Site, d.Cells[e.RightFace].Site
		perCell[e.LeftFace] = append(perCell[e.LeftFace], sideEdge{
			va: e.Va, vb: e.Vb, angle: math.Atan2(r.Y-l.Y, r.X-l.X),
		})
		perCell[e.RightFace] = append(perCell[e.RightFace], sideEdge{
			va: e.Vb, vb: e.Va, angle: math.Atan2(l.Y-r.Y, l.X-r.X),
		})
	}

	for i := range d.Cells {
		d.Cells[i].Polygon = closeCell(d.Cells[i].Site, perCell[i], bbox)
	}
}

// closeCell chains the counter-clockwise sorted edges of one cell and fills
// every gap with a walk along the box border.
func closeCell(site voronoi.Point, edges []sideEdge, bbox BoundingBox) []voronoi.Point {
	if len(edges) == 0 {
		if !bbox.Contains(site) {
			return nil
		}
		return []voronoi.Point{
			{X: bbox.Xl, Y: bbox.Yb}, {X: bbox.Xr, Y: bbox.Yb},
			{X: bbox.Xr, Y: bbox.Yt}, {X: bbox.Xl, Y: bbox.Yt},
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].angle < edges[j].angle })

	var poly []voronoi.Point
	add := func(p voronoi.Point) {
		if n := len(poly); n > 0 && samePoint(poly[n-1], p) {
			return
		}
		poly = append(poly, p)
	}
	for i, e := range edges {
		add(e.va)
		add(e.vb)
		next := edges[(i+1)%len(edges)].va
		if !samePoint(e.vb, next) {
			for _, corner := range borderWalk(e.vb, next, bbox) {
				add(corner)
			}
		}
	}
	if n := len(poly); n > 1 && samePoint(poly[0], poly[n-1]) {
		poly = poly[:n-1]
	}
	return poly
}

// borderWalk returns the box corners met when walking counter-clockwise
// along the border from one boundary point to another.
func borderWalk(from, to voronoi.Point, bbox BoundingBox) []voronoi.Point {
	w, h := bbox.Xr-bbox.Xl, bbox.Yt-bbox.Yb
	perimeter := 2 * (w + h)
	sf, st := borderPos(from, bbox), borderPos(to, bbox)
	if st <= sf {
		st += perimeter
	}

	corners := [4]struct {
		pos float64
		p   voronoi.Point
	}{
		{w, voronoi.Point{X: bbox.Xr, Y: bbox.Yb}},
		{w + h, voronoi.Point{X: bbox.Xr, Y: bbox.Yt}},
		{2*w + h, voronoi.Point{X: bbox.Xl, Y: bbox.Yt}},
		{perimeter, voronoi.Point{X: bbox.Xl, Y: bbox.Yb}},
	}

	var out []voronoi.Point
	for lap := 0.0; lap <= perimeter; lap += perimeter {
		for _, c := range corners {
			pos := c.pos + lap
			if pos > sf && pos < st {
				out = append(out, c.p)
			}
		}
	}
	return out
}

// borderPos maps a point on the box border to its counter-clockwise distance
// from the bottom-left corner.
func borderPos(p voronoi.Point, bbox BoundingBox) float64 {
	w, h := bbox.Xr-bbox.Xl, bbox.Yt-bbox.Yb
	dist := [4]float64{
		math.Abs(p.Y - bbox.Yb), // bottom
		math.Abs(p.X - bbox.Xr), // right
		math.Abs(p.Y - bbox.Yt), // top
		math.Abs(p.X - bbox.Xl), // left
	}
	side := 0
	for i := 1; i < 4; i++ {
		if dist[i] < dist[side] {
			side = i
		}
	}
	switch side {
	case 0:
		return p.X - bbox.Xl
	case 1:
		return w + (p.Y - bbox.Yb)
	case 2:
		return w + h + (bbox.Xr - p.X)
	default:
		return 2*w + h + (bbox.Yt - p.Y)
	}
}

func samePoint(a, b voronoi.Point) bool {
	return equalWithEpsilon(a.X, b.X) && equalWithEpsilon(a.Y, b.Y)
}

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
