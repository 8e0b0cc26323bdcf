package SW2LLocal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/utils"
)

func TestSW2LLocal(t *testing.T) {
	p := PCCU1D.PhysicalParams{G: 9.81, R: 0.7}
	m, err := NewSW2LLocal(p)
	require.NoError(t, err)
	assert.Len(t, m.VarNames(), 5)
	assert.Len(t, m.DepthPairs(), 2)

	Wi := &PCCU1D.Interfaces{
		Left: utils.NewMatrixFromRows(
			[]float64{0.5}, []float64{0.2}, []float64{1.5}, []float64{-0.1}, []float64{-2}),
		Right: utils.NewMatrixFromRows(
			[]float64{0.7}, []float64{0.1}, []float64{1.1}, []float64{0.3}, []float64{-1.8}),
	}
	F := PCCU1D.NewInterfaces(4, 1)
	m.ComputeF(Wi, F)
	assert.InDelta(t, 0.1, F.Left.At(0, 0), 1.e-15)
	assert.InDelta(t, 0.02+9.81*(0.5+1.5-2), F.Left.At(1, 0), 1.e-14)
	assert.InDelta(t, -0.15, F.Left.At(2, 0), 1.e-15)
	assert.InDelta(t, 0.005+9.81*(0.7*0.5+1.5-2), F.Left.At(3, 0), 1.e-14)

	Ainv := []*mat.Dense{mat.NewDense(4, 4, nil)}
	m.ComputeAinv(utils.Matrix{}, Wi, Ainv)
	var (
		g, r   = p.G, p.R
		h1, h2 = 0.6, 1.3
	)
	A := mat.NewDense(4, 4, []float64{
		0, h1, 0, 0,
		g, 0, g, 0,
		0, 0, 0, h2,
		g * r, 0, g, 0,
	})
	var I mat.Dense
	I.Mul(Ainv[0], A)
	assert.True(t, mat.EqualApprox(&I, eye(4), 1.e-13))

	sp := PCCU1D.NewSpeeds(1)
	dtCFL := m.LocalSpeeds(Wi, 0.01, sp)
	umL := (0.5*0.2 + 1.5*(-0.1)) / 2.
	umR := (0.7*0.1 + 1.1*0.3) / 1.8
	assert.InDelta(t, math.Max(umL+math.Sqrt(g*2), umR+math.Sqrt(g*1.8)), sp.Ap[0], 1.e-14)
	assert.InDelta(t, math.Min(umL-math.Sqrt(g*2), umR-math.Sqrt(g*1.8)), sp.Am[0], 1.e-14)
	assert.InDelta(t, 0.01/(2*math.Max(sp.Ap[0], -sp.Am[0])), dtCFL, 1.e-15)
}

func eye(n int) *mat.Dense {
	I := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, 1)
	}
	return I
}
