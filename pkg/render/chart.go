// Package render draws clipped diagrams: an interactive go-echarts chart for
// the web page and a static PNG.
package render

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/go-fortune-dcel/pkg/clip"
	"github.com/0x0FACED/go-fortune-dcel/pkg/voronoi"
)

// prepareScatter styles the chart for the dark page and pins both axes to
// the clipping box, so edges ending on the border touch the frame.
func prepareScatter(scatter *charts.Scatter, title string, box clip.BoundingBox) {
	axisLabel := &opts.AxisLabel{Color: "white"}
	hidden := &opts.SplitLine{Show: opts.Bool(false)}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{Color: "white"},
			Right:     "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			Name:      "X",
			Min:       box.Xl,
			Max:       box.Xr,
			AxisLabel: axisLabel,
			SplitLine: hidden,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			Name:      "Y",
			Min:       box.Yb,
			Max:       box.Yt,
			AxisLabel: axisLabel,
			SplitLine: hidden,
		}),
	)
	for _, orient := range []string{"horizontal", "vertical"} {
		scatter.SetGlobalOptions(charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     orient,
		}))
	}
}

// Chart plots the sites, the Voronoi vertices and every clipped edge.
func Chart(sites []voronoi.Point, mesh *voronoi.Mesh, d *clip.Diagram, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title, d.Box)

	points := make([]opts.ScatterData, 0, len(sites))
	for _, s := range sites {
		points = append(points, opts.ScatterData{Value: []float64{s.X, s.Y}})
	}
	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	if mesh != nil {
		vertices := make([]opts.ScatterData, 0, len(mesh.Vertices))
		for _, v := range mesh.Vertices {
			vertices = append(vertices, opts.ScatterData{Value: []float64{v.Point.X, v.Point.Y}})
		}
		scatter.AddSeries("Вершины", vertices).
			SetSeriesOptions(
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color: "orange",
				}),
			)
	}

	for _, edge := range d.Edges {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries("Границы", []opts.LineData{
			{Value: []float64{edge.Va.X, edge.Va.Y}},
			{Value: []float64{edge.Vb.X, edge.Vb.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)
		scatter.Overlap(line)
	}
	return scatter
}
