package Simulation1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/model_problems"
	"github.com/notargets/goswe/utils"
)

func TestInitParams(t *testing.T) {
	p, err := NewInitParams(map[string]float64{"HL": 3, "bumpwidth": 0.1}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3., p.Get("hL"))
	assert.Equal(t, 0.1, p.Get("bumpWidth"))
	assert.Equal(t, 1., p.Get("x0"))
	assert.Equal(t, 1., p.Get("bumpCenter"))
	assert.Equal(t, 0.5, p.Get("hR"))
	_, err = NewInitParams(map[string]float64{"nope": 1}, 0, 2)
	assert.Error(t, err)
}

func TestBottomProfile(t *testing.T) {
	var (
		X    = utils.Linspace(0, 1, 11)
		p, _ = NewInitParams(map[string]float64{"zb": -1, "slope": 0.5}, 0, 1)
	)
	for _, z := range BottomProfile(Flat, X, p) {
		assert.Equal(t, -1., z)
	}
	Z := BottomProfile(Slope, X, p)
	assert.InDelta(t, -0.5, Z[10], 1.e-15)
	Z = BottomProfile(Bump, X, p)
	assert.InDelta(t, -0.8, Z[5], 1.e-15)
	assert.Equal(t, -1., Z[0])
	assert.Equal(t, -1., Z[10])
	for _, z := range Z {
		assert.True(t, z >= -1 && z <= -0.8+1.e-12)
	}
}

func TestInitialStateFlowForm(t *testing.T) {
	var (
		X    = utils.Linspace(-1, 1, 8)
		Z    = make([]float64, len(X))
		p, _ = NewInitParams(nil, -1, 1)
	)
	for _, tc := range []struct {
		model     string
		discharge bool
	}{
		{"SW2LLayerwise", true},
		{"SW2LLocal", false},
	} {
		m, err := model_problems.NewModel(tc.model, PCCU1D.DefaultPhysicalParams(2))
		require.NoError(t, err)
		W, err := InitialState(TwoLayerRiemann, m, X, Z, p)
		require.NoError(t, err)
		// Left state at j = 0, right state at the last cell
		assert.Equal(t, diazLeft[0], W.At(0, 0))
		assert.Equal(t, diazRight[2], W.At(2, 7))
		if tc.discharge {
			assert.InDelta(t, diazLeft[1], W.At(1, 0), 1.e-15)
			assert.InDelta(t, diazRight[3], W.At(3, 7), 1.e-15)
		} else {
			assert.InDelta(t, diazLeft[1]/diazLeft[0], W.At(1, 0), 1.e-15)
			assert.InDelta(t, diazRight[3]/diazRight[2], W.At(3, 7), 1.e-15)
		}
	}
}

func TestGaussianBoreAndSurfaces(t *testing.T) {
	var (
		X    = utils.Linspace(0, 3, 31)
		p, _ = NewInitParams(nil, 0, 3)
		Z    = BottomProfile(Flat, X, p)
	)
	m, err := model_problems.NewModel("SW2LLocal", PCCU1D.DefaultPhysicalParams(2))
	require.NoError(t, err)
	W, err := InitialState(GaussianBore, m, X, Z, p)
	require.NoError(t, err)
	levels := Surfaces(W, m.DepthPairs())
	require.Len(t, levels, 3)
	for j := range X {
		assert.InDelta(t, 5, levels[0][j], 1.e-14)
		assert.InDelta(t, 1+math.Exp(-math.Pow((X[j]-1.5)/0.2, 2)), levels[1][j], 1.e-14)
		assert.Equal(t, 0., levels[2][j])
	}

	m1, err := model_problems.NewModel("SW1LGlobal", PCCU1D.DefaultPhysicalParams(1))
	require.NoError(t, err)
	W, err = InitialState(GaussianBore, m1, X, Z, p)
	require.NoError(t, err)
	assert.InDelta(t, 2, W.At(0, 15), 1.e-14)
	assert.Equal(t, "GaussianBore", GaussianBore.String())
}
