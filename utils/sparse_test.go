package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseMulVec(t *testing.T) {
	// First difference operator on 4 points
	dok := NewDOK(3, 4)
	for i := 0; i < 3; i++ {
		dok.Set(i, i, -1)
		dok.Set(i, i+1, 1)
	}
	dok.SetReadOnly("D")
	assert.Panics(t, func() { dok.Set(0, 0, 2) })
	csr := dok.ToCSR()
	assert.Equal(t, 6, csr.M.NNZ())
	dst := []float64{9, 9, 9}
	csr.MulVec(dst, []float64{1, 4, 9, 16})
	assert.Equal(t, []float64{3, 5, 7}, dst)
	assert.Panics(t, func() { csr.MulVec(dst, []float64{1}) })
}
