package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/solutionfiles"
)

func TestProcessInput1D(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(`
Title: Lake
Model: SW1LLocal
InitType: LakeAtRest
Bottom: bump
Nx: 52
FinalTime: 0.5
`), 0644))

	v := viper.New()
	v.Set("inputConditionsFile", fileName)
	ip, err := processInput1D(v)
	require.NoError(t, err)
	assert.Equal(t, "SW1LLocal", ip.Model)
	assert.Equal(t, 52, ip.Nx)
	assert.Equal(t, 0.5, ip.FinalTime)

	v.Set("nx", 102)
	v.Set("finalTime", 0.25)
	v.Set("timeScheme", "SSPRK3")
	v.Set("diffusion", "StateJump")
	ip, err = processInput1D(v)
	require.NoError(t, err)
	assert.Equal(t, 102, ip.Nx)
	assert.Equal(t, 0.25, ip.FinalTime)
	assert.Equal(t, "SSPRK3", ip.TimeScheme)
	assert.Equal(t, "StateJump", ip.Diffusion)
	assert.Equal(t, "LakeAtRest", ip.InitType)

	v.Set("model", "Euler1D")
	_, err = processInput1D(v)
	var ce *PCCU1D.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Model", ce.Field)

	v = viper.New()
	v.Set("inputConditionsFile", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = processInput1D(v)
	assert.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	log := logrus.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	require.NoError(t, configureLogger(log, true, "json"))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.WithField("step", 3).Debug("update")
	assert.Contains(t, buf.String(), `"step":3`)
	require.NoError(t, configureLogger(log, false, "text"))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Error(t, configureLogger(log, false, "xml"))

	p, err := startProfile("")
	assert.NoError(t, err)
	assert.Nil(t, p)
	_, err = startProfile("trace")
	assert.Error(t, err)
}

func TestExecute1D(t *testing.T) {
	var (
		dir    = t.TempDir()
		output = filepath.Join(dir, "history.nc")
	)
	logger.SetOutput(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"1D", "-k", "102", "--finalTime", "0.05", "--timeScheme", "SSPRK2", "-o", output})
	require.NoError(t, rootCmd.Execute())
	series, err := solutionfiles.ReadNetCDFFile(output)
	require.NoError(t, err)
	assert.Equal(t, "SW1LGlobal", series.Model)
	assert.Equal(t, 0.05, series.Times[len(series.Times)-1])
	assert.Len(t, series.X, 102)
}
