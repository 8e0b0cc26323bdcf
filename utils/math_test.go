package utils

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	assert.Equal(t, 1., POW(3, 0))
	assert.Equal(t, 243., POW(3, 5))
	assert.InDelta(t, 1./81, POW(3, -4), 1.e-15)
	assert.InDelta(t, math.Pow(2, 10), POW(2, 10), 1.e-12)
	assert.InDelta(t, math.Pow(2, -10), POW(2, -10), 1.e-15)

	assert.Equal(t, 1., Minmod3(1, 2, 3))
	assert.Equal(t, -1., Minmod3(-3, -1, -2))
	assert.Equal(t, 0., Minmod3(-1, 2, 3))
	assert.Equal(t, 0., Minmod3(0, 2, 3))

	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
}

func TestMatrixAndNaN(t *testing.T) {
	A := NewMatrixFromRows([]float64{1, 2, 3}, []float64{4, 5, 6})
	nr, nc := A.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 3, nc)
	assert.Equal(t, []float64{4, 5, 6}, A.RowView(1))
	assert.Equal(t, []float64{3, 6}, []float64{A.At(0, 2), A.At(1, 2)})

	B := A.Copy().Scale(2)
	assert.Equal(t, 0., B.MaxAbsDiff(A.Copy().Add(A)))
	assert.Equal(t, 6., B.MaxAbsDiff(A))
	assert.Equal(t, 12., B.Max())
	assert.Equal(t, 2., B.Min())

	// RowView shares storage
	A.RowView(0)[1] = math.NaN()
	assert.True(t, IsNan(A))
	i, j := FirstNonFinite(A)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	i, j = FirstNonFinite(B)
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)

	B.SetReadOnly("B")
	assert.Panics(t, func() { B.Set(0, 0, 1) })
}

func TestArraysToLine(t *testing.T) {
	line := ArraysToLine([]float64{0, 1, 2, 3}, []float64{1, 2, math.NaN(), 4})
	assert.Equal(t, []float32{0, 1, 1, 2}, line)
}

func TestMemUsage(t *testing.T) {
	runtime.GC()
	mu := ReadMemUsage()
	assert.GreaterOrEqual(t, mu.NumGC, uint32(1))
	assert.LessOrEqual(t, mu.HeapMiB, mu.SysMiB)
	assert.Contains(t, mu.String(), "MiB")
}
