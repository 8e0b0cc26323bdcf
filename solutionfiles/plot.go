package solutionfiles

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotProfiles saves one line per profile against X, ghost cells excluded.
// The format follows the file extension (png, svg, pdf ...).
func PlotProfiles(fileName, title string, X []float64, names []string, profiles [][]float64) (err error) {
	if len(names) != len(profiles) {
		return fmt.Errorf("%d names for %d profiles", len(names), len(profiles))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "level"
	p.Add(plotter.NewGrid())
	for n, f := range profiles {
		if len(f) != len(X) {
			return fmt.Errorf("profile %s has %d points, X has %d", names[n], len(f), len(X))
		}
		xys := make(plotter.XYs, 0, len(X))
		for i := 1; i < len(X)-1; i++ {
			xys = append(xys, plotter.XY{X: X[i], Y: f[i]})
		}
		var line *plotter.Line
		if line, err = plotter.NewLine(xys); err != nil {
			return
		}
		line.Color = plotutil.Color(n)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(names[n], line)
	}
	p.Legend.Top = true
	return p.Save(8*vg.Inch, 4*vg.Inch, fileName)
}
