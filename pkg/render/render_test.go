package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-fortune-dcel/pkg/clip"
	"github.com/0x0FACED/go-fortune-dcel/pkg/voronoi"
)

func diagram(t *testing.T) ([]voronoi.Point, *voronoi.Mesh, *clip.Diagram, clip.BoundingBox) {
	t.Helper()
	sites := []voronoi.Point{{X: 20, Y: 80}, {X: 20, Y: 20}, {X: 80, Y: 20}, {X: 70, Y: 70}}
	d, err := voronoi.Compute(sites)
	require.NoError(t, err)
	bbox := clip.NewBoundingBox(0, 100, 0, 100)
	return sites, d.Mesh, clip.Build(d.Mesh, bbox, true), bbox
}

func TestChart(t *testing.T) {
	sites, mesh, d, _ := diagram(t)
	scatter := Chart(sites, mesh, d, "Voronoi test")

	var buf bytes.Buffer
	require.NoError(t, scatter.Render(&buf))
	assert.Contains(t, buf.String(), "Voronoi test")
	assert.Contains(t, buf.String(), "scatter")
}

func TestPNG(t *testing.T) {
	sites, _, d, bbox := diagram(t)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, sites, d, bbox, 200, 150))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	// the top-left corner lies inside the first site's cell
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.False(t, r == 0xffff && g == 0xffff && b == 0xffff, "cell left unfilled")
}
