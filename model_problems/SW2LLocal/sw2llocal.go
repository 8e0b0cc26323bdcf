package SW2LLocal

import (
	"math"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/utils"
	"gonum.org/v1/gonum/mat"
)

/*
Two layer shallow water, velocity form, W = [h1, u1, h2, u2, Z]. Layer 1
is the upper, lighter layer and r = rho1/rho2.

	h1_t + (h1 u1)_x = 0
	u1_t + (u1^2/2 + g(h1 + h2 + Z))_x = 0
	h2_t + (h2 u2)_x = 0
	u2_t + (u2^2/2 + g(r h1 + h2 + Z))_x = 0
*/
type SW2LLocal struct {
	G, R float64
}

func NewSW2LLocal(p PCCU1D.PhysicalParams) (m *SW2LLocal, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	m = &SW2LLocal{G: p.G, R: p.R}
	return
}

func (m *SW2LLocal) Name() string       { return "SW2LLocal" }
func (m *SW2LLocal) VarNames() []string { return []string{"h1", "u1", "h2", "u2", "Z"} }
func (m *SW2LLocal) DepthPairs() []PCCU1D.DepthPair {
	return []PCCU1D.DepthPair{
		{Depth: 0, Flow: 1, Discharge: false},
		{Depth: 2, Flow: 3, Discharge: false},
	}
}

func (m *SW2LLocal) ComputeF(Wi *PCCU1D.Interfaces, F *PCCU1D.Interfaces) {
	for _, side := range [][2]utils.Matrix{{Wi.Left, F.Left}, {Wi.Right, F.Right}} {
		var (
			W, Fs  = side[0], side[1]
			h1, u1 = W.RowView(0), W.RowView(1)
			h2, u2 = W.RowView(2), W.RowView(3)
			z      = W.RowView(4)
		)
		for k := range h1 {
			Fs.RowView(0)[k] = h1[k] * u1[k]
			Fs.RowView(1)[k] = 0.5*u1[k]*u1[k] + m.G*(h1[k]+h2[k]+z[k])
			Fs.RowView(2)[k] = h2[k] * u2[k]
			Fs.RowView(3)[k] = 0.5*u2[k]*u2[k] + m.G*(m.R*h1[k]+h2[k]+z[k])
		}
	}
}

func (m *SW2LLocal) ComputeS(W utils.Matrix, Wi *PCCU1D.Interfaces, S utils.Matrix) {
	S.Zero()
}

func (m *SW2LLocal) ComputeB(W utils.Matrix, Wi *PCCU1D.Interfaces, B utils.Matrix) {
	B.Zero()
}

func (m *SW2LLocal) ComputeSpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Spsi utils.Matrix) {
	Spsi.Zero()
}

func (m *SW2LLocal) ComputeBpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Bpsi utils.Matrix) {
	Bpsi.Zero()
}

// ComputeAinv inverts the flux Jacobian at rest,
//
//	[[0,   h1, 0, 0 ],
//	 [g,   0,  g, 0 ],
//	 [0,   0,  0, h2],
//	 [g r, 0,  g, 0 ]]
//
// with the depths averaged across the interface.
func (m *SW2LLocal) ComputeAinv(W utils.Matrix, Wi *PCCU1D.Interfaces, Ainv []*mat.Dense) {
	var (
		h1L, h1R = Wi.Left.RowView(0), Wi.Right.RowView(0)
		h2L, h2R = Wi.Left.RowView(2), Wi.Right.RowView(2)
		oog      = 1 / (m.G * (1 - m.R))
	)
	for k, A := range Ainv {
		A.Zero()
		A.Set(0, 1, oog)
		A.Set(0, 3, -oog)
		A.Set(1, 0, 2/(h1L[k]+h1R[k]))
		A.Set(2, 1, -m.R*oog)
		A.Set(2, 3, oog)
		A.Set(3, 2, 2/(h2L[k]+h2R[k]))
	}
}

// LocalSpeeds uses the barotropic estimate um +- sqrt(g(h1 + h2)) with um
// the depth averaged velocity.
func (m *SW2LLocal) LocalSpeeds(Wi *PCCU1D.Interfaces, dx float64, sp *PCCU1D.Speeds) (dtCFL float64) {
	speeds := func(W utils.Matrix, k int) (lmin, lmax float64) {
		var (
			h1, u1 = W.At(0, k), W.At(1, k)
			h2, u2 = W.At(2, k), W.At(3, k)
			um     = (h1*u1 + h2*u2) / (h1 + h2)
			c      = math.Sqrt(m.G * (h1 + h2))
		)
		return um - c, um + c
	}
	_, nInt := Wi.Dims()
	for k := 0; k < nInt; k++ {
		lminL, lmaxL := speeds(Wi.Left, k)
		lminR, lmaxR := speeds(Wi.Right, k)
		sp.Set(k, lminL, lmaxL, lminR, lmaxR)
	}
	return sp.CFL(dx)
}
