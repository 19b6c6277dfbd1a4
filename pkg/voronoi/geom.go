package voronoi

import (
	"cmp"
	"math"
)

// Point is a site or vertex position. Points are totally ordered by X, then Y;
// NaN sorts before every other value, so sorting never fails.
type Point struct {
	X float64
	Y float64
}

// Compare returns -1, 0 or +1 depending on whether p sorts before, equal to
// or after q.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Triple is a snapshot of three consecutive arc sites, left to right.
type Triple [3]Point

// BreakpointX returns the abscissa where the parabola of left meets the
// parabola of right, with the sweep line at sweepY below both sites. The
// returned intersection is the one with left's arc on its left side.
//
// A site lying on the sweep line has a degenerate parabola (a vertical ray),
// in which case the breakpoint is that site's x. Sites at equal height meet
// midway.
func BreakpointX(left, right Point, sweepY float64) float64 {
	pr := right.Y - sweepY
	if pr == 0 {
		return right.X
	}
	pl := left.Y - sweepY
	if pl == 0 {
		return left.X
	}

	// shift the origin to right.X: a*x^2 + b*x + c = 0
	hl := left.X - right.X
	a := 1/pl - 1/pr
	b := -2 * hl / pl
	c := hl*hl/pl + left.Y - right.Y

	if a == 0 {
		if b == 0 {
			return (left.X + right.X) / 2
		}
		return right.X - c/b
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	s := math.Sqrt(disc)
	if b < 0 {
		return (-b+s)/(2*a) + right.X
	}
	if b+s == 0 {
		return right.X
	}
	return -2*c/(b+s) + right.X
}

// Circumcenter returns the center of the circle through a, b and c. It
// reports false when the points are collinear (or coincide), in which case no
// such circle exists.
func Circumcenter(a, b, c Point) (Point, bool) {
	ax, ay := a.X-b.X, a.Y-b.Y
	cx, cy := c.X-b.X, c.Y-b.Y

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	d := 2 * (ax*cy - ay*cx)
	if math.Abs(d) <= collinearTolerance*(ha+hc) {
		return Point{}, false
	}

	x := (cy*ha - ay*hc) / d
	y := (ax*hc - cx*ha) / d
	return Point{X: x + b.X, Y: y + b.Y}, true
}

// CircumcircleBottom returns the height of the lowest point of the circle
// through a, b and c: the sweep height at which that circle event fires.
func CircumcircleBottom(a, b, c Point) (float64, bool) {
	center, ok := Circumcenter(a, b, c)
	if !ok {
		return 0, false
	}
	return center.Y - math.Hypot(a.X-center.X, a.Y-center.Y), true
}

// BreakpointsConverge reports whether the breakpoints between the arcs of a,
// b and c (left to right) move towards each other, i.e. the triple turns
// clockwise. Swapping any two points flips the result for non-collinear input.
func BreakpointsConverge(a, b, c Point) bool {
	return (a.Y-b.Y)*(b.X-c.X) > (b.Y-c.Y)*(a.X-b.X)
}

// collinearTolerance bounds the relative cross product under which three
// points are treated as collinear.
const collinearTolerance = 1e-12
