// Package render turns generated scenes into displayable artifacts. It is a
// thin adaptation layer over the plotting libraries and holds no geometry
// logic of its own.
package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/alloviz/alloviz/scene"
)

const (
	chartWidth  = "700px"
	chartHeight = "640px"
)

// Axis triad colors for the camera origin marker.
var axisColors = [3]string{"#d62728", "#2ca02c", "#1f77b4"}

// HTML writes an interactive, self-contained HTML page with one 3D chart per
// scene. Each box is drawn as a wireframe polyline in its own color, with the
// camera origin marked by an axis triad and a faint viewing ray to each box
// center.
func HTML(w io.Writer, scenes ...*scene.Scene) error {
	if len(scenes) == 0 {
		return errors.New("nothing to render, no scenes given")
	}
	page := components.NewPage()
	page.PageTitle = "Egocentric vs Allocentric Pose"
	page.SetLayout(components.PageFlexLayout)

	for _, s := range scenes {
		chart, err := sceneChart(s)
		if err != nil {
			return err
		}
		page.AddCharts(chart)
	}
	return page.Render(w)
}

func sceneChart(s *scene.Scene) (*charts.Line3D, error) {
	if s == nil || len(s.Boxes) == 0 {
		return nil, errors.New("cannot render an empty scene")
	}

	line := charts.NewLine3D()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    s.Label,
			Subtitle: "camera at origin, z into the scene",
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "x"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "y"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "z"}),
	)

	// camera origin marker
	axisLen := 0.5
	for i, dir := range []r3.Vector{{X: axisLen}, {Y: axisLen}, {Z: axisLen}} {
		line.AddSeries("",
			polylineData([]r3.Vector{{}, dir}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: axisColors[i], Width: 3}),
		)
	}

	for _, pb := range s.Boxes {
		hex := pb.Color.Hex()
		line.AddSeries(pb.Box.Label(),
			polylineData(pb.Box.WireframePath()),
			charts.WithLineStyleOpts(opts.LineStyle{Color: hex, Width: 2}),
		)
		// viewing ray from the camera to the box center
		line.AddSeries("",
			polylineData([]r3.Vector{{}, pb.Box.Pose().Point()}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: "#bbbbbb", Width: 1, Opacity: opts.Float(0.5)}),
		)
	}
	return line, nil
}

func polylineData(path []r3.Vector) []opts.Chart3DData {
	data := make([]opts.Chart3DData, 0, len(path))
	for _, pt := range path {
		data = append(data, opts.Chart3DData{Value: []interface{}{pt.X, pt.Y, pt.Z}})
	}
	return data
}
