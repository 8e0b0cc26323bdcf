package SW1LGlobal

import (
	"math"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/utils"
	"gonum.org/v1/gonum/mat"
)

/*
One layer shallow water, conservative form, W = [h, q, Z]

	h_t + q_x = 0
	q_t + (q^2/h + g'/2 h^2)_x = -g' h Z_x

with reduced gravity g' = g(1-r).
*/
type SW1LGlobal struct {
	G, R   float64
	GPrime float64
}

func NewSW1LGlobal(p PCCU1D.PhysicalParams) (m *SW1LGlobal, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	m = &SW1LGlobal{
		G:      p.G,
		R:      p.R,
		GPrime: p.G * (1 - p.R),
	}
	return
}

func (m *SW1LGlobal) Name() string       { return "SW1LGlobal" }
func (m *SW1LGlobal) VarNames() []string { return []string{"h", "q", "Z"} }
func (m *SW1LGlobal) DepthPairs() []PCCU1D.DepthPair {
	return []PCCU1D.DepthPair{{Depth: 0, Flow: 1, Discharge: true}}
}

func (m *SW1LGlobal) ComputeF(Wi *PCCU1D.Interfaces, F *PCCU1D.Interfaces) {
	for _, side := range [][2]utils.Matrix{{Wi.Left, F.Left}, {Wi.Right, F.Right}} {
		var (
			h, q   = side[0].RowView(0), side[0].RowView(1)
			fh, fq = side[1].RowView(0), side[1].RowView(1)
		)
		for k := range h {
			fh[k] = q[k]
			fq[k] = q[k]*q[k]/h[k] + 0.5*m.GPrime*h[k]*h[k]
		}
	}
}

// ComputeS is -g' h_j (Z at the right edge of cell j - Z at its left edge)
func (m *SW1LGlobal) ComputeS(W utils.Matrix, Wi *PCCU1D.Interfaces, S utils.Matrix) {
	var (
		h      = W.RowView(0)
		zE, zW = Wi.Left.RowView(2), Wi.Right.RowView(2)
		s0, s1 = S.RowView(0), S.RowView(1)
	)
	for c := range s0 {
		j := c + 1
		s0[c] = 0
		s1[c] = -m.GPrime * h[j] * (zE[j] - zW[j-1])
	}
}

func (m *SW1LGlobal) ComputeB(W utils.Matrix, Wi *PCCU1D.Interfaces, B utils.Matrix) {
	B.Zero()
}

func (m *SW1LGlobal) ComputeSpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Spsi utils.Matrix) {
	var (
		hL, hR = Wi.Left.RowView(0), Wi.Right.RowView(0)
		zL, zR = Wi.Left.RowView(2), Wi.Right.RowView(2)
		s0, s1 = Spsi.RowView(0), Spsi.RowView(1)
	)
	for k := range s0 {
		s0[k] = 0
		s1[k] = -0.5 * m.GPrime * (hL[k] + hR[k]) * (zR[k] - zL[k])
	}
}

func (m *SW1LGlobal) ComputeBpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Bpsi utils.Matrix) {
	Bpsi.Zero()
}

// ComputeAinv inverts the flux Jacobian at rest, [[0, 1], [g' h, 0]], with h
// the interface average.
func (m *SW1LGlobal) ComputeAinv(W utils.Matrix, Wi *PCCU1D.Interfaces, Ainv []*mat.Dense) {
	hL, hR := Wi.Left.RowView(0), Wi.Right.RowView(0)
	for k, A := range Ainv {
		A.Set(0, 0, 0)
		A.Set(0, 1, 2/(m.GPrime*(hL[k]+hR[k])))
		A.Set(1, 0, 1)
		A.Set(1, 1, 0)
	}
}

func (m *SW1LGlobal) LocalSpeeds(Wi *PCCU1D.Interfaces, dx float64, sp *PCCU1D.Speeds) (dtCFL float64) {
	var (
		hL, hR = Wi.Left.RowView(0), Wi.Right.RowView(0)
		qL, qR = Wi.Left.RowView(1), Wi.Right.RowView(1)
	)
	for k := range hL {
		uL, uR := qL[k]/hL[k], qR[k]/hR[k]
		cL, cR := math.Sqrt(m.GPrime*hL[k]), math.Sqrt(m.GPrime*hR[k])
		sp.Set(k, uL-cL, uL+cL, uR-cR, uR+cR)
	}
	return sp.CFL(dx)
}
