package InputParameters

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var twoLayerInput = []byte(`
Title: "Two Layer Riemann"
Model: SW2LLayerwise
InitType: TwoLayerRiemann
Nx: 402
XMin: -1
XMax: 1
FinalTime: 0.5
TimeScheme: ssprk3
Diffusion: statejump
R: 0.5
BCs:
  q1: [wall, wall]
  H2: [symmetry, 0.25]
InitParams:
  x0: 0.1
OutputEvery: 5
OutputFile: out.nc
`)

func TestParse(t *testing.T) {
	ip := Defaults()
	require.NoError(t, ip.Parse(twoLayerInput))
	assert.Equal(t, "Two Layer Riemann", ip.Title)
	assert.Equal(t, "SW2LLayerwise", ip.Model)
	assert.Equal(t, 402, ip.Nx)
	assert.Equal(t, 0.5, ip.FinalTime)
	assert.Equal(t, 0.1, ip.InitParams["x0"])
	// Keys missing from the document keep their defaults
	assert.Equal(t, 1.3, ip.Theta)
	assert.Equal(t, "flat", ip.Bottom)
	require.NoError(t, ip.Validate())

	cfg, err := ip.Config()
	require.NoError(t, err)
	assert.Equal(t, PCCU1D.SSPRK3, cfg.Scheme)
	assert.Equal(t, PCCU1D.StateJump, cfg.Diffusion)
	assert.Equal(t, 0.5, cfg.DtFact)

	p, err := ip.PhysicalParams()
	require.NoError(t, err)
	assert.Equal(t, 9.81, p.G)
	assert.Equal(t, 0.5, p.R)

	rules, err := ip.BoundaryRules([]string{"h1", "q1", "h2", "q2", "Z"})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"symmetry", "symmetry"},
		{"wall", "wall"},
		{"symmetry", "0.25"},
		{"symmetry", "symmetry"},
	}, rules)

	_, err = ip.BoundaryRules([]string{"h", "q", "Z"})
	var ce *PCCU1D.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "BCs", ce.Field)

	var buf bytes.Buffer
	ip.Fprint(&buf)
	assert.Contains(t, buf.String(), "Two Layer Riemann")
	assert.Contains(t, buf.String(), "BCs[q1] = [wall wall]")
}

func TestModelDefaultDensityRatio(t *testing.T) {
	ip := Defaults()
	ip.Model = "sw2llocal"
	p, err := ip.PhysicalParams()
	require.NoError(t, err)
	assert.Equal(t, 0.98, p.R)
	ip.Model = "SW1LLocal"
	p, err = ip.PhysicalParams()
	require.NoError(t, err)
	assert.Equal(t, 0., p.R)
}

func TestValidate(t *testing.T) {
	var ce *PCCU1D.ConfigurationError
	for _, tc := range []struct {
		field  string
		modify func(ip *InputParameters1D)
	}{
		{"Nx", func(ip *InputParameters1D) { ip.Nx = 2 }},
		{"XMax", func(ip *InputParameters1D) { ip.XMax = ip.XMin }},
		{"FinalTime", func(ip *InputParameters1D) { ip.FinalTime = 0 }},
		{"Model", func(ip *InputParameters1D) { ip.Model = "Euler1D" }},
		{"TimeScheme", func(ip *InputParameters1D) { ip.TimeScheme = "RK4" }},
		{"Diffusion", func(ip *InputParameters1D) { ip.Diffusion = "Rusanov" }},
		{"Theta", func(ip *InputParameters1D) { ip.Theta = 2.5 }},
		{"DtFact", func(ip *InputParameters1D) { ip.DtFact = 1.5 }},
		{"R", func(ip *InputParameters1D) { r := 1.; ip.R = &r }},
	} {
		ip := Defaults()
		tc.modify(ip)
		err := ip.Validate()
		require.True(t, errors.As(err, &ce), tc.field)
		assert.Equal(t, tc.field, ce.Field)
	}
	assert.NoError(t, Defaults().Validate())
	cfg, err := Defaults().Config()
	require.NoError(t, err)
	assert.Equal(t, PCCU1D.AutoDiffusion, cfg.Diffusion)
}

func TestReadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, twoLayerInput, 0644))
	ip, err := ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, "TwoLayerRiemann", ip.InitType)

	require.NoError(t, os.WriteFile(fileName, []byte("BCs:\n  h: [[1], wall]\n"), 0644))
	_, err = ReadFile(fileName)
	assert.Error(t, err)
	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
