package FV1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goswe/utils"
)

func TestBoundaryConditions(t *testing.T) {
	W := utils.NewMatrixFromRows(
		[]float64{-9, 1, 2, 3, -9},
		[]float64{-9, 1, 2, 3, -9},
		[]float64{-9, 1, 2, 3, -9},
		[]float64{7, 7, 7, 7, 7},
	)
	bcs, err := NewBoundaryConditions([][2]string{
		{"symmetry", "symmetry"},
		{"0", "wall"},
		{"open", "-1.5"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, bcs.NumVars())
	bcs.Apply(W)
	assert.Equal(t, []float64{1, 1, 2, 3, 3}, W.RowView(0))
	assert.Equal(t, []float64{0, 1, 2, 3, -3}, W.RowView(1))
	assert.Equal(t, []float64{0, 1, 2, 3, -1.5}, W.RowView(2))
	// Topography row untouched
	assert.Equal(t, []float64{7, 7, 7, 7, 7}, W.RowView(3))

	_, err = NewBoundaryConditions([][2]string{{"symmetry", "nonsense"}})
	assert.Error(t, err)

	tooMany := NewUniformBoundaryConditions(4, BoundaryCondition{Type: utils.BCSymmetry})
	assert.Panics(t, func() { tooMany.Apply(W) })
}
