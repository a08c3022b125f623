package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"speedup/internal/benchmark"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ChartWriter renders the speedup chart of one graph type to path.
type ChartWriter interface {
	WriteChart(gs benchmark.GraphSpeedup, path string) error
}

// PNGChart draws line charts with gonum/plot. The image format follows
// the file extension.
type PNGChart struct {
	Width  vg.Length
	Height vg.Length
}

// NewPNGChart returns a renderer producing images of the given size in inches.
func NewPNGChart(widthIn, heightIn float64) *PNGChart {
	return &PNGChart{Width: vg.Length(widthIn) * vg.Inch, Height: vg.Length(heightIn) * vg.Inch}
}

// BaselineLabel is the legend entry of the constant 1.0 reference line.
func BaselineLabel(baseline string) string {
	return baseline + " (break even)"
}

func (c *PNGChart) WriteChart(gs benchmark.GraphSpeedup, path string) error {
	p, err := buildPlot(gs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create plots directory: %w", err)
	}
	if err := p.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}

func buildPlot(gs benchmark.GraphSpeedup) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Speedup Plot for (%s)", gs.GraphType)
	p.X.Label.Text = "Nodes"
	p.Y.Label.Text = fmt.Sprintf("Ratio over %s", gs.Baseline)
	p.BackgroundColor = color.White
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, s := range gs.Series {
		line, points, err := plotter.NewLinePoints(seriesXYs(s))
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Algorithm, err)
		}
		label := s.Algorithm
		if s.Baseline {
			label = BaselineLabel(s.Algorithm)
			line.Color = color.Gray{Y: 96}
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			points.Color = line.Color
		} else {
			line.Color = plotutil.Color(i)
			points.Color = line.Color
			points.Shape = plotutil.Shape(i)
		}
		p.Add(line, points)
		p.Legend.Add(label, line, points)
	}
	return p, nil
}

func seriesXYs(s benchmark.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.Points))
	for i, sp := range s.Points {
		pts[i].X = float64(sp.Nodes)
		pts[i].Y = sp.Ratio
	}
	return pts
}
