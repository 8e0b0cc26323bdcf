package SW2LLayerwise

import (
	"math"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/utils"
	"gonum.org/v1/gonum/mat"
)

/*
Two layer shallow water, each layer in conservative form, W = [h1, q1, h2, q2, Z]

	h1_t + q1_x = 0
	q1_t + (q1^2/h1 + g/2 h1^2)_x = -g h1 h2_x - g h1 Z_x
	h2_t + q2_x = 0
	q2_t + (q2^2/h2 + g/2 h2^2)_x = -g r h2 h1_x - g h2 Z_x

The topography products form S and Spsi, the layer coupling products form
B and Bpsi.
*/
type SW2LLayerwise struct {
	G, R float64
}

func NewSW2LLayerwise(p PCCU1D.PhysicalParams) (m *SW2LLayerwise, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	m = &SW2LLayerwise{G: p.G, R: p.R}
	return
}

func (m *SW2LLayerwise) Name() string       { return "SW2LLayerwise" }
func (m *SW2LLayerwise) VarNames() []string { return []string{"h1", "q1", "h2", "q2", "Z"} }
func (m *SW2LLayerwise) DepthPairs() []PCCU1D.DepthPair {
	return []PCCU1D.DepthPair{
		{Depth: 0, Flow: 1, Discharge: true},
		{Depth: 2, Flow: 3, Discharge: true},
	}
}

func (m *SW2LLayerwise) ComputeF(Wi *PCCU1D.Interfaces, F *PCCU1D.Interfaces) {
	for _, side := range [][2]utils.Matrix{{Wi.Left, F.Left}, {Wi.Right, F.Right}} {
		W, Fs := side[0], side[1]
		for _, l := range []int{0, 2} {
			var (
				h, q   = W.RowView(l), W.RowView(l + 1)
				fh, fq = Fs.RowView(l), Fs.RowView(l + 1)
			)
			for k := range h {
				fh[k] = q[k]
				fq[k] = q[k]*q[k]/h[k] + 0.5*m.G*h[k]*h[k]
			}
		}
	}
}

// cellJump is the difference between the right and left edge values of
// row n reconstructed inside cell c+1
func cellJump(Wi *PCCU1D.Interfaces, n, c int) float64 {
	return Wi.Left.At(n, c+1) - Wi.Right.At(n, c)
}

func (m *SW2LLayerwise) ComputeS(W utils.Matrix, Wi *PCCU1D.Interfaces, S utils.Matrix) {
	var (
		h1, h2 = W.RowView(0), W.RowView(2)
	)
	for c := range S.RowView(0) {
		j := c + 1
		dZ := cellJump(Wi, 4, c)
		S.RowView(0)[c] = 0
		S.RowView(1)[c] = -m.G * h1[j] * dZ
		S.RowView(2)[c] = 0
		S.RowView(3)[c] = -m.G * h2[j] * dZ
	}
}

func (m *SW2LLayerwise) ComputeB(W utils.Matrix, Wi *PCCU1D.Interfaces, B utils.Matrix) {
	var (
		h1, h2 = W.RowView(0), W.RowView(2)
	)
	for c := range B.RowView(0) {
		j := c + 1
		B.RowView(0)[c] = 0
		B.RowView(1)[c] = -m.G * h1[j] * cellJump(Wi, 2, c)
		B.RowView(2)[c] = 0
		B.RowView(3)[c] = -m.G * m.R * h2[j] * cellJump(Wi, 0, c)
	}
}

func (m *SW2LLayerwise) ComputeSpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Spsi utils.Matrix) {
	var (
		L, R = Wi.Left, Wi.Right
	)
	for k := range Spsi.RowView(0) {
		dZ := R.At(4, k) - L.At(4, k)
		Spsi.RowView(0)[k] = 0
		Spsi.RowView(1)[k] = -0.5 * m.G * (L.At(0, k) + R.At(0, k)) * dZ
		Spsi.RowView(2)[k] = 0
		Spsi.RowView(3)[k] = -0.5 * m.G * (L.At(2, k) + R.At(2, k)) * dZ
	}
}

func (m *SW2LLayerwise) ComputeBpsi(W utils.Matrix, Wi *PCCU1D.Interfaces, Bpsi utils.Matrix) {
	var (
		L, R = Wi.Left, Wi.Right
	)
	for k := range Bpsi.RowView(0) {
		Bpsi.RowView(0)[k] = 0
		Bpsi.RowView(1)[k] = -0.5 * m.G * (L.At(0, k) + R.At(0, k)) * (R.At(2, k) - L.At(2, k))
		Bpsi.RowView(2)[k] = 0
		Bpsi.RowView(3)[k] = -0.5 * m.G * m.R * (L.At(2, k) + R.At(2, k)) * (R.At(0, k) - L.At(0, k))
	}
}

// ComputeAinv inverts the path Jacobian at rest, coupling terms included,
//
//	[[0,       1, 0,      0],
//	 [g h1,    0, g h1,   0],
//	 [0,       0, 0,      1],
//	 [g r h2,  0, g h2,   0]]
//
// with the depths averaged across the interface.
func (m *SW2LLayerwise) ComputeAinv(W utils.Matrix, Wi *PCCU1D.Interfaces, Ainv []*mat.Dense) {
	var (
		L, R = Wi.Left, Wi.Right
		oomr = 1 / (1 - m.R)
	)
	for k, A := range Ainv {
		var (
			h1 = 0.5 * (L.At(0, k) + R.At(0, k))
			h2 = 0.5 * (L.At(2, k) + R.At(2, k))
		)
		A.Zero()
		A.Set(0, 1, oomr/(m.G*h1))
		A.Set(0, 3, -oomr/(m.G*h2))
		A.Set(1, 0, 1)
		A.Set(2, 1, -m.R*oomr/(m.G*h1))
		A.Set(2, 3, oomr/(m.G*h2))
		A.Set(3, 2, 1)
	}
}

func (m *SW2LLayerwise) LocalSpeeds(Wi *PCCU1D.Interfaces, dx float64, sp *PCCU1D.Speeds) (dtCFL float64) {
	speeds := func(W utils.Matrix, k int) (lmin, lmax float64) {
		var (
			h1, q1 = W.At(0, k), W.At(1, k)
			h2, q2 = W.At(2, k), W.At(3, k)
			um     = (q1 + q2) / (h1 + h2)
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
