package sites

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-fortune-dcel/pkg/voronoi"
)

func TestRandom(t *testing.T) {
	a := Random(50, 100, 20, 7)
	require.Len(t, a, 50)
	for _, p := range a {
		assert.True(t, p.X >= 0 && p.X < 100, "x %v", p.X)
		assert.True(t, p.Y >= 0 && p.Y < 20, "y %v", p.Y)
	}
	assert.Equal(t, a, Random(50, 100, 20, 7))
	assert.NotEqual(t, a, Random(50, 100, 20, 8))
	assert.Nil(t, Random(0, 100, 100, 1))
	assert.Nil(t, Random(5, 0, 100, 1))
}

func TestGrid(t *testing.T) {
	g := Grid(4, 100, 100)
	assert.Equal(t, []voronoi.Point{{X: 25, Y: 25}, {X: 75, Y: 25}, {X: 25, Y: 75}, {X: 75, Y: 75}}, g)

	g = Grid(7, 90, 60)
	require.Len(t, g, 7)
	assert.Equal(t, voronoi.Point{X: 11.25, Y: 15}, g[0])
	assert.Nil(t, Grid(-1, 10, 10))
}

func TestRead(t *testing.T) {
	in := `
# sites
0 0
1.5, -2
  3e2	4
`
	pts, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Point{{X: 0, Y: 0}, {X: 1.5, Y: -2}, {X: 300, Y: 4}}, pts)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("1 2\n3\n"))
	assert.EqualError(t, err, "line 2: expected two coordinates, got 1")

	_, err = Read(strings.NewReader("1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
