package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBCName(t *testing.T) {
	tests := []struct {
		in    string
		bc    BCType
		value float64
		ok    bool
	}{
		{"symmetry", BCSymmetry, 0, true},
		{"  Symmetry ", BCSymmetry, 0, true},
		{"WALL", BCAntiSymmetry, 0, true},
		{"open", BCOpen, 0, true},
		{"0", BCDirichlet, 0, true},
		{"-1.5", BCDirichlet, -1.5, true},
		{"bogus", BCNone, 0, false},
	}
	for _, tt := range tests {
		bc, value, ok := ParseBCName(tt.in)
		assert.Equal(t, tt.bc, bc, tt.in)
		assert.Equal(t, tt.value, value, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "Open", BCOpen.String())
}
