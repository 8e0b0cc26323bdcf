package SW1LLocal

import (
	"math"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/utils"
	"gonum.org/v1/gonum/mat"
)

/*
One layer shallow water, velocity form, W = [h, u, Z]

	h_t + (h u)_x = 0
	u_t + (u^2/2 + g'(h + Z))_x = 0

The topography enters through the flux, so there are no source terms.
*/
type SW1LLocal struct {
	G, R   float64
	GPrime float64
}

func NewSW1LLocal(p PCCU1D.PhysicalParams) (m *SW1LLocal, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	m = &SW1LLocal{
		G:      p.G,
		R:      p.R,
		GPrime: p.G * (1 - p.R),
	}
	return
}

func (m *SW1LLocal) Name() string       { return "SW1LLocal" }
func (m *SW1LLocal) VarNames() []string { return []string{"h", "u", "Z"} }
func (m *SW1LLocal) DepthPairs() []PCCU1D.DepthPair {
	return []PCCU1D.DepthPair{{Depth: 0, Flow: 1, Discharge: false}}
}

func (m *SW1LLocal) ComputeF(Wi *PCCU1D.Interfaces, F *PCCU1D.Interfaces) {
	for _, side := range [][2]utils.Matrix{{Wi.Left, F.Left}, {Wi.Right, F.Right}} {
		var (
			h, u, z = side[0].RowView(0), side[0].RowView(1), side[0].RowView(2)
			fh, fu  = side[1].RowView(0), side[1].RowView(1)
		)
		for k := range h {
			fh[k] = h[k] * u[k]
			fu[k] = 0.5*u[k]*u[k] + m.GPrime*(h[k]+z[k])
		}
	}
}

func (m *SW1LLocal) ComputeS(W utils.Matrix, Wi *PCCU1D.Interfaces, S utils.Matrix) {
	S.Zero()
}

func (m *SW1LLocal) ComputeB(W utils.Matrix, Wi *PCCU1D.Interfaces, B utils.Matrix) {
	B.Zero()
}

func (m *SW1LLocal) ComputeSpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Spsi utils.Matrix) {
	Spsi.Zero()
}

func (m *SW1LLocal) ComputeBpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Bpsi utils.Matrix) {
	Bpsi.Zero()
}

// ComputeAinv inverts the flux Jacobian at rest, [[0, h], [g', 0]]
func (m *SW1LLocal) ComputeAinv(W utils.Matrix, Wi *PCCU1D.Interfaces, Ainv []*mat.Dense) {
	hL, hR := Wi.Left.RowView(0), Wi.Right.RowView(0)
	for k, A := range Ainv {
		A.Set(0, 0, 0)
		A.Set(0, 1, 1/m.GPrime)
		A.Set(1, 0, 2/(hL[k]+hR[k]))
		A.Set(1, 1, 0)
	}
}

func (m *SW1LLocal) LocalSpeeds(Wi *PCCU1D.Interfaces, dx float64, sp *PCCU1D.Speeds) (dtCFL float64) {
	var (
		hL, hR = Wi.Left.RowView(0), Wi.Right.RowView(0)
		uL, uR = Wi.Left.RowView(1), Wi.Right.RowView(1)
	)
	for k := range hL {
		cL, cR := math.Sqrt(m.GPrime*hL[k]), math.Sqrt(m.GPrime*hR[k])
		sp.Set(k, uL[k]-cL, uL[k]+cL, uR[k]-cR, uR[k]+cR)
	}
	return sp.CFL(dx)
}
