package PCCU1D

import (
	"math"

	"github.com/notargets/goswe/utils"
)

// DesingularizedVelocity is sqrt(2) h q / sqrt(h^4 + max(h^4, eps)). It is
// q/h wherever h^4 > eps and stays bounded as h goes to zero.
func DesingularizedVelocity(h, q, eps float64) float64 {
	h4 := utils.POW(h, 4)
	return math.Sqrt2 * h * q / math.Sqrt(h4+math.Max(h4, eps))
}

// MinmodSlope is the limited slope of cell j of a row, zero in the ghost cells
func MinmodSlope(w []float64, j int, theta float64) float64 {
	if j <= 0 || j >= len(w)-1 {
		return 0
	}
	return utils.Minmod3(
		theta*(w[j]-w[j-1]),
		0.5*(w[j+1]-w[j-1]),
		theta*(w[j+1]-w[j]),
	)
}

// reconstruct fills ws.Wi from W in three ordered passes: velocity rows are
// turned into discharge, every row is reconstructed with the minmod
// limiter, then each depth pair gets its flow row recomputed from the
// desingularized velocity. W is not modified.
func (s *Solver) reconstruct(W utils.Matrix) (err error) {
	var (
		ws    = s.ws
		pairs = s.model.DepthPairs()
	)
	ws.Wr.CopyFrom(W)
	if err = s.part.forEach(s.part.cells, func(jMin, jMax int) error {
		for _, dp := range pairs {
			if dp.Discharge {
				continue
			}
			h, u, q := W.RowView(dp.Depth), W.RowView(dp.Flow), ws.Wr.RowView(dp.Flow)
			for j := jMin; j < jMax; j++ {
				q[j] = h[j] * u[j]
			}
		}
		return nil
	}); err != nil {
		return
	}

	err = s.part.forEach(s.part.interfaces, func(kMin, kMax int) error {
		for n := 0; n < ws.Nvars; n++ {
			var (
				w     = ws.Wr.RowView(n)
				left  = ws.Wi.Left.RowView(n)
				right = ws.Wi.Right.RowView(n)
			)
			for k := kMin; k < kMax; k++ {
				left[k] = w[k] + 0.5*MinmodSlope(w, k, s.cfg.Theta)
				right[k] = w[k+1] - 0.5*MinmodSlope(w, k+1, s.cfg.Theta)
			}
		}
		for _, dp := range pairs {
			for _, side := range []utils.Matrix{ws.Wi.Left, ws.Wi.Right} {
				h, q := side.RowView(dp.Depth), side.RowView(dp.Flow)
				for k := kMin; k < kMax; k++ {
					if !(h[k] > 0) {
						return &NumericalBreakdownError{
							Step:     s.steps + 1,
							Cell:     k,
							Variable: s.varNames[dp.Depth],
							Value:    h[k],
							Stage:    StageReconstruction,
						}
					}
					u := DesingularizedVelocity(h[k], q[k], s.cfg.Epsilon)
					if dp.Discharge {
						q[k] = h[k] * u
					} else {
						q[k] = u
					}
				}
			}
		}
		return nil
	})
	return
}
