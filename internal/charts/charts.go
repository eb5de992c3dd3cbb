// internal/charts/charts.go
// Package charts renders combined time-series as PNG line charts.
package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/ioreport/internal/metrics"
)

var lineColor = color.RGBA{R: 54, G: 162, B: 235, A: 255}

// RenderLine writes one chart for a combined series. An empty series writes
// nothing and returns false: the chart is omitted, not an error.
func RenderLine(series metrics.TimeSeries, title, yLabel, outPath string) (bool, error) {
	if len(series) == 0 {
		return false, nil
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = yLabel
	p.Y.Min = 0

	pts := make(plotter.XYs, len(series))
	for i, sample := range series {
		pts[i].X = sample.OffsetSeconds
		pts[i].Y = sample.Value
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return false, fmt.Errorf("chart %s: %w", title, err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)

	p.Add(plotter.NewGrid(), line)
	if err := p.Save(8*vg.Inch, 3*vg.Inch, outPath); err != nil {
		return false, fmt.Errorf("chart %s: %w", title, err)
	}
	return true, nil
}
