package voronoi

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parabolaY evaluates the arc of focus f at x with the sweep line at d.
func parabolaY(f Point, d, x float64) float64 {
	return ((x-f.X)*(x-f.X) + f.Y*f.Y - d*d) / (2 * (f.Y - d))
}

func TestPointCompare(t *testing.T) {
	assert.Equal(t, -1, Point{1, 2}.Compare(Point{1, 3}))
	assert.Equal(t, 1, Point{2, 0}.Compare(Point{1, 5}))
	assert.Equal(t, 0, Point{1, 1}.Compare(Point{1, 1}))
	assert.True(t, Point{0, 9}.Less(Point{1, 0}))

	nan := math.NaN()
	assert.Equal(t, -1, Point{nan, 0}.Compare(Point{math.Inf(-1), 0}))
	assert.Equal(t, 0, Point{nan, 0}.Compare(Point{nan, 0}))

	pts := []Point{{3, 1}, {nan, 2}, {1, 4}, {1, 2}}
	slices.SortFunc(pts, Point.Compare)
	assert.True(t, math.IsNaN(pts[0].X))
	assert.Equal(t, []Point{{1, 2}, {1, 4}, {3, 1}}, pts[1:])
}

func TestPointFinite(t *testing.T) {
	assert.True(t, Point{1e300, -1e300}.Finite())
	assert.False(t, Point{math.NaN(), 0}.Finite())
	assert.False(t, Point{0, math.Inf(1)}.Finite())
	assert.False(t, Point{math.Inf(-1), 0}.Finite())
}

func TestBreakpointX(t *testing.T) {
	t.Run("equal heights meet midway", func(t *testing.T) {
		assert.InDelta(t, 2.0, BreakpointX(Point{0, 2}, Point{4, 2}, 0), 1e-12)
		assert.InDelta(t, 2.0, BreakpointX(Point{4, 2}, Point{0, 2}, 0), 1e-12)
	})

	t.Run("site on the sweep line", func(t *testing.T) {
		assert.Equal(t, 3.0, BreakpointX(Point{0, 5}, Point{3, 0}, 0))
		assert.Equal(t, -1.0, BreakpointX(Point{-1, 0}, Point{3, 5}, 0))
	})

	t.Run("both intersections", func(t *testing.T) {
		higher, lower := Point{0, 2}, Point{2, 1}
		assert.InDelta(t, 4-math.Sqrt(10), BreakpointX(higher, lower, 0), 1e-12)
		assert.InDelta(t, 4+math.Sqrt(10), BreakpointX(lower, higher, 0), 1e-12)
	})

	t.Run("parabolas meet", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			l := Point{rnd.Float64() * 100, rnd.Float64() * 100}
			r := Point{rnd.Float64() * 100, rnd.Float64() * 100}
			d := math.Min(l.Y, r.Y) - 1 - rnd.Float64()*50
			x := BreakpointX(l, r, d)
			require.InDelta(t, parabolaY(l, d, x), parabolaY(r, d, x), 1e-6*math.Max(1, math.Abs(parabolaY(l, d, x))))

			// left arc lies below just left of the breakpoint
			h := 1e-3
			slack := 1e-9 * math.Max(1, math.Abs(parabolaY(l, d, x)))
			assert.LessOrEqual(t, parabolaY(l, d, x-h), parabolaY(r, d, x-h)+slack)
			assert.LessOrEqual(t, parabolaY(r, d, x+h), parabolaY(l, d, x+h)+slack)
		}
	})
}

func TestCircumcenter(t *testing.T) {
	c, ok := Circumcenter(Point{0, 4}, Point{0, 0}, Point{4, 0})
	require.True(t, ok)
	assert.InDelta(t, 2.0, c.X, 1e-12)
	assert.InDelta(t, 2.0, c.Y, 1e-12)

	bottom, ok := CircumcircleBottom(Point{0, 4}, Point{0, 0}, Point{4, 0})
	require.True(t, ok)
	assert.InDelta(t, 2-2*math.Sqrt2, bottom, 1e-12)

	_, ok = Circumcenter(Point{0, 0}, Point{1, 1}, Point{2, 2})
	assert.False(t, ok, "collinear")
	_, ok = Circumcenter(Point{1, 1}, Point{1, 1}, Point{1, 1})
	assert.False(t, ok, "coincident")
	_, ok = CircumcircleBottom(Point{0, 0}, Point{0, 1}, Point{0, 5})
	assert.False(t, ok)
}

func TestCircumcenterPermutations(t *testing.T) {
	a, b, c := Point{1.5, -3}, Point{7, 2.25}, Point{-4, 6}
	want, ok := Circumcenter(a, b, c)
	require.True(t, ok)

	ra := math.Hypot(a.X-want.X, a.Y-want.Y)
	assert.InDelta(t, ra, math.Hypot(b.X-want.X, b.Y-want.Y), 1e-9)
	assert.InDelta(t, ra, math.Hypot(c.X-want.X, c.Y-want.Y), 1e-9)

	for _, p := range [][3]Point{{a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}} {
		got, ok := Circumcenter(p[0], p[1], p[2])
		require.True(t, ok)
		assert.InDelta(t, want.X, got.X, 1e-9)
		assert.InDelta(t, want.Y, got.Y, 1e-9)
	}
}

func TestBreakpointsConverge(t *testing.T) {
	a, b, c := Point{0, 0}, Point{0, 4}, Point{4, 0}
	assert.True(t, BreakpointsConverge(a, b, c))
	assert.False(t, BreakpointsConverge(c, b, a))
	assert.False(t, BreakpointsConverge(b, a, c))
	assert.False(t, BreakpointsConverge(Point{0, 0}, Point{1, 1}, Point{2, 2}), "collinear")
}
