package SW2LLayerwise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/utils"
)

func TestSW2LLayerwiseAinv(t *testing.T) {
	p := PCCU1D.PhysicalParams{G: 9.81, R: 0.98}
	m, err := NewSW2LLayerwise(p)
	require.NoError(t, err)
	Wi := &PCCU1D.Interfaces{
		Left: utils.NewMatrixFromRows(
			[]float64{1.22582}, []float64{-0.03866}, []float64{0.75325}, []float64{0.02893}, []float64{-1.97907}),
		Right: utils.NewMatrixFromRows(
			[]float64{0.37002}, []float64{-0.18684}, []float64{1.59310}, []float64{0.17416}, []float64{-1.97907}),
	}
	Ainv := []*mat.Dense{mat.NewDense(4, 4, nil)}
	m.ComputeAinv(utils.Matrix{}, Wi, Ainv)
	var (
		g, r   = p.G, p.R
		h1     = 0.5 * (1.22582 + 0.37002)
		h2     = 0.5 * (0.75325 + 1.59310)
		A      = mat.NewDense(4, 4, []float64{0, 1, 0, 0, g * h1, 0, g * h1, 0, 0, 0, 0, 1, g * r * h2, 0, g * h2, 0})
		I, eye mat.Dense
	)
	I.Mul(Ainv[0], A)
	eye.Mul(A, Ainv[0])
	id := mat.NewDiagDense(4, []float64{1, 1, 1, 1})
	assert.True(t, mat.EqualApprox(&I, id, 1.e-12))
	assert.True(t, mat.EqualApprox(&eye, id, 1.e-12))
}

func TestSW2LLayerwiseAtRest(t *testing.T) {
	// h1 constant and h2 + Z constant: the interface jump vanishes and each
	// cell source equals the flux difference across the cell
	m, err := NewSW2LLayerwise(PCCU1D.PhysicalParams{G: 9.81, R: 0.7})
	require.NoError(t, err)
	var (
		h1     = 0.5
		eta2   = 1.
		zCells = []float64{0.1, 0.2, 0.4}
		zE     = []float64{0.15, 0.3, 0.45} // Right edge of each cell
		zW     = []float64{0.05, 0.1, 0.35} // Left edge of each cell
	)
	W := utils.NewMatrix(5, 3)
	Wi := PCCU1D.NewInterfaces(5, 2)
	for j := range zCells {
		W.Set(0, j, h1)
		W.Set(2, j, eta2-zCells[j])
		W.Set(4, j, zCells[j])
	}
	for k := 0; k < 2; k++ {
		Wi.Left.Set(0, k, h1)
		Wi.Left.Set(2, k, eta2-zE[k])
		Wi.Left.Set(4, k, zE[k])
		Wi.Right.Set(0, k, h1)
		Wi.Right.Set(2, k, eta2-zW[k+1])
		Wi.Right.Set(4, k, zW[k+1])
	}
	var (
		F          = PCCU1D.NewInterfaces(4, 2)
		S, B       = utils.NewMatrix(4, 1), utils.NewMatrix(4, 1)
		Spsi, Bpsi = utils.NewMatrix(4, 2), utils.NewMatrix(4, 2)
	)
	m.ComputeF(Wi, F)
	m.ComputeS(W, Wi, S)
	m.ComputeB(W, Wi, B)
	m.ComputeSpsi(W, Wi, Spsi)
	m.ComputeBpsi(W, Wi, Bpsi)
	for n := 0; n < 4; n++ {
		for k := 0; k < 2; k++ {
			jump := F.Right.At(n, k) - F.Left.At(n, k) - Spsi.At(n, k) - Bpsi.At(n, k)
			assert.InDelta(t, 0, jump, 1.e-14)
		}
		// The interior cell is bounded by Right of interface 0 and Left of interface 1
		fluxDiff := F.Left.At(n, 1) - F.Right.At(n, 0)
		assert.InDelta(t, fluxDiff, S.At(n, 0)+B.At(n, 0), 1.e-14)
	}
}

func TestSW2LLayerwiseLocalSpeeds(t *testing.T) {
	// Depth averaged velocity plus or minus the barotropic celerity, the
	// bottom level does not enter
	m, err := NewSW2LLayerwise(PCCU1D.PhysicalParams{G: 9.81, R: 0.98})
	require.NoError(t, err)
	var (
		g     = 9.81
		umL   = (-0.03866 + 0.02893) / (1.22582 + 0.75325)
		umR   = (-0.18684 + 0.17416) / (0.37002 + 1.59310)
		cL    = math.Sqrt(g * (1.22582 + 0.75325))
		cR    = math.Sqrt(g * (0.37002 + 1.59310))
		sp    = PCCU1D.NewSpeeds(1)
		dtCFL float64
	)
	for _, z := range []float64{0, -1.97907} {
		Wi := &PCCU1D.Interfaces{
			Left: utils.NewMatrixFromRows(
				[]float64{1.22582}, []float64{-0.03866}, []float64{0.75325}, []float64{0.02893}, []float64{z}),
			Right: utils.NewMatrixFromRows(
				[]float64{0.37002}, []float64{-0.18684}, []float64{1.59310}, []float64{0.17416}, []float64{z}),
		}
		dtCFL = m.LocalSpeeds(Wi, 0.01, sp)
		assert.InDelta(t, math.Max(umL+cL, umR+cR), sp.Ap[0], 1.e-14)
		assert.InDelta(t, math.Min(umL-cL, umR-cR), sp.Am[0], 1.e-14)
		assert.InDelta(t, 0.01/(2*math.Max(sp.Ap[0], -sp.Am[0])), dtCFL, 1.e-15)
	}
}
