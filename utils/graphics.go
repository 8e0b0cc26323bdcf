package utils

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

// LineChart overlays 1D profiles in an avs window. Each call to Plot adds
// polylines, so successive snapshots remain visible.
type LineChart struct {
	Chart  *chart2d.Chart2D
	Colors []color.RGBA
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart: chart2d.NewChart2D(float32(xmin), float32(xmax), float32(fmin), float32(fmax),
			width, height, utils2.WHITE, utils2.BLACK),
		Colors: []color.RGBA{utils2.RED, utils2.GREEN, utils2.WHITE},
	}
	return
}

// Plot draws one polyline per field, colored by position in fields
func (lc *LineChart) Plot(x []float64, fields ...[]float64) {
	for n, f := range fields {
		lc.Chart.AddLine(ArraysToLine(x, f), lc.Colors[n%len(lc.Colors)])
	}
}

// ArraysToLine converts a polyline into the segment list avs draws, skipping
// segments with a non-finite end point.
func ArraysToLine(x, f []float64) (line []float32) {
	line = make([]float32, 0, 4*len(x))
	for i := 0; i < len(x)-1; i++ {
		if !isFinite(f[i]) || !isFinite(f[i+1]) {
			continue
		}
		line = append(line,
			float32(x[i]), float32(f[i]),
			float32(x[i+1]), float32(f[i+1]))
	}
	return
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
