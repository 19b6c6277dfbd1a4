// Package sites produces input point sets for the sweep.
package sites

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/0x0FACED/go-fortune-dcel/pkg/voronoi"
)

// Random returns n points with integer coordinates in [0, width) x [0, height).
// The same seed always gives the same points.
func Random(n, width, height int, seed int64) []voronoi.Point {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	rnd := rand.New(rand.NewSource(seed))
	points := make([]voronoi.Point, n)
	for i := range points {
		points[i] = voronoi.Point{
			X: float64(rnd.Intn(width)),
			Y: float64(rnd.Intn(height)),
		}
	}
	return points
}

// Grid spreads n points over a regular grid of cell centers.
func Grid(n, width, height int) []voronoi.Point {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	points := make([]voronoi.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(points) < n; i++ {
		for j := 0; j < cols && len(points) < n; j++ {
			points = append(points, voronoi.Point{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return points
}

// Read parses one "x y" pair per line. Blank lines and lines starting with
// '#' are skipped; commas are accepted as separators.
func Read(r io.Reader) ([]voronoi.Point, error) {
	var points []voronoi.Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		parts := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected two coordinates, got %d", line, len(parts))
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, voronoi.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read sites")
	}
	return points, nil
}
