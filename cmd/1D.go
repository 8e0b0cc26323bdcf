/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/notargets/goswe/InputParameters"
	"github.com/notargets/goswe/Simulation1D"
	"github.com/notargets/goswe/model_problems"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Shallow Water Solutions",
	Long: `
Executes the path-conservative central-upwind solver for one of the shallow
water models: ` + strings.Join(model_problems.Names(), ", ") + `

goswe 1D -I input.yaml -o history.nc -p final.png`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var ip *InputParameters.InputParameters1D
		if ip, err = processInput1D(viper.GetViper()); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			ip.Print()
		}
		return Run1D(ip, viper.GetBool("graph"))
	},
}

// Flags that override the input file, by viper key
var overrides1D = []struct {
	key, shorthand, usage string
	defaultVal            interface{}
}{
	{"model", "m", "model to run: " + strings.Join(model_problems.Names(), ", "), ""},
	{"initType", "", "initial condition: DamBreak, LakeAtRest, GaussianBore, TwoLayerRiemann, TwoLayerAtRest", ""},
	{"nx", "k", "number of cells, ghost cells included", 0},
	{"finalTime", "", "the target end time for the sim", 0.},
	{"dtFact", "", "fraction of the CFL limited time step, in (0,1]", 0.},
	{"theta", "", "minmod limiter parameter in [1,2], larger is less dissipative", 0.},
	{"timeScheme", "", "time integrator: Euler, SSPRK2 or SSPRK3", ""},
	{"diffusion", "", "flux diffusion: Auto, PathJacobian or StateJump", ""},
	{"parallelDegree", "", "number of goroutines for the per cell loops", 0},
	{"output", "o", "NetCDF file for the recorded history", ""},
	{"plot", "p", "image file for the final profiles, format from the extension", ""},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	flags := OneDCmd.Flags()
	flags.StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Model\n\t- InitType\n\t- Nx")
	flags.BoolP("graph", "g", false, "display a graph while computing solution")
	for _, o := range overrides1D {
		switch val := o.defaultVal.(type) {
		case string:
			flags.StringP(o.key, o.shorthand, val, o.usage)
		case int:
			flags.IntP(o.key, o.shorthand, val, o.usage)
		case float64:
			flags.Float64P(o.key, o.shorthand, val, o.usage)
		}
	}
	for _, name := range append([]string{"inputConditionsFile", "graph"}, overrideKeys()...) {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func overrideKeys() (keys []string) {
	for _, o := range overrides1D {
		keys = append(keys, o.key)
	}
	return
}

// processInput1D starts from the defaults, overlays the input file, then
// applies every override set by a flag, the environment or the config file
func processInput1D(v *viper.Viper) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.Defaults()
	if fileName := v.GetString("inputConditionsFile"); fileName != "" {
		if ip, err = InputParameters.ReadFile(fileName); err != nil {
			return nil, err
		}
	}
	set := func(key string, apply func()) {
		if v.IsSet(key) {
			apply()
		}
	}
	set("model", func() { ip.Model = v.GetString("model") })
	set("initType", func() { ip.InitType = v.GetString("initType") })
	set("nx", func() { ip.Nx = v.GetInt("nx") })
	set("finalTime", func() { ip.FinalTime = v.GetFloat64("finalTime") })
	set("dtFact", func() { ip.DtFact = v.GetFloat64("dtFact") })
	set("theta", func() { ip.Theta = v.GetFloat64("theta") })
	set("timeScheme", func() { ip.TimeScheme = v.GetString("timeScheme") })
	set("diffusion", func() { ip.Diffusion = v.GetString("diffusion") })
	set("parallelDegree", func() { ip.ParallelDegree = v.GetInt("parallelDegree") })
	set("output", func() { ip.OutputFile = v.GetString("output") })
	set("plot", func() { ip.PlotFile = v.GetString("plot") })
	if err = ip.Validate(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return
}

func Run1D(ip *InputParameters.InputParameters1D, graph bool) (err error) {
	var sim *Simulation1D.Simulation1D
	if sim, err = Simulation1D.NewSimulation1D(ip, logger); err != nil {
		return
	}
	if err = sim.Run(graph); err != nil {
		return
	}
	return sim.WriteOutputs()
}
