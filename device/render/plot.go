package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// microAmp scales drain current onto the plot's uA axis.
const microAmp = 1e6

// SaveCurves draws the given series as colored lines, currents in uA, and
// writes a PNG to path. A non-nil marker is drawn as a highlighted point on
// top of the curves, the way the interactive view pins the active bias.
func SaveCurves(path, title, xLabel string, curves []Series, marker *Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Id (uA)"
	p.Add(plotter.NewGrid())

	for i, s := range curves {
		line, err := plotter.NewLine(scaledXYs(s))
		if err != nil {
			return fmt.Errorf("building %q line: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}

	if marker != nil {
		scatter, err := plotter.NewScatter(scaledXYs(*marker))
		if err != nil {
			return fmt.Errorf("building marker: %w", err)
		}
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)
		if marker.Label != "" {
			p.Legend.Add(marker.Label, scatter)
		}
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

func scaledXYs(s Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i] = plotter.XY{X: s.X[i], Y: s.Y[i] * microAmp}
	}
	return pts
}
