package Simulation1D

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/notargets/goswe/FV1D"
	"github.com/notargets/goswe/InputParameters"
	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/model_problems"
	"github.com/notargets/goswe/solutionfiles"
	"github.com/notargets/goswe/utils"
	"github.com/sirupsen/logrus"
)

// Simulation1D drives a solver from an input file to the final time,
// recording snapshots and reporting progress.
type Simulation1D struct {
	Params  *InputParameters.InputParameters1D
	Mesh    *FV1D.Mesh1D
	Model   PCCU1D.Model
	BCs     *FV1D.BoundaryConditions
	Solver  *PCCU1D.Solver
	History *PCCU1D.History
	Log     logrus.FieldLogger
	Chart   *utils.LineChart
	pairs   []PCCU1D.DepthPair
	mass0   []float64
}

func NewSimulation1D(ip *InputParameters.InputParameters1D, log logrus.FieldLogger) (sim *Simulation1D, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	sim = &Simulation1D{
		Params:  ip,
		Log:     log,
		History: &PCCU1D.History{},
	}
	var (
		p   PCCU1D.PhysicalParams
		cfg PCCU1D.Config
		it  InitType
		bt  BottomType
		iP  InitParams
	)
	if p, err = ip.PhysicalParams(); err != nil {
		return nil, err
	}
	if cfg, err = ip.Config(); err != nil {
		return nil, err
	}
	if sim.Model, err = model_problems.NewModel(ip.Model, p); err != nil {
		return nil, err
	}
	sim.pairs = sim.Model.DepthPairs()
	if sim.Mesh, err = FV1D.NewMesh1D(ip.XMin, ip.XMax, ip.Nx); err != nil {
		return nil, err
	}
	if it, err = ParseInitType(ip.InitType); err != nil {
		return nil, err
	}
	if bt, err = ParseBottomType(ip.Bottom); err != nil {
		return nil, err
	}
	if iP, err = NewInitParams(ip.InitParams, ip.XMin, ip.XMax); err != nil {
		return nil, err
	}
	Z := BottomProfile(bt, sim.Mesh.X, iP)
	W0, err := InitialState(it, sim.Model, sim.Mesh.X, Z, iP)
	if err != nil {
		return nil, err
	}
	rules, err := ip.BoundaryRules(sim.Model.VarNames())
	if err != nil {
		return nil, err
	}
	if sim.BCs, err = FV1D.NewBoundaryConditions(rules); err != nil {
		return nil, err
	}
	sim.BCs.Apply(W0)
	if sim.Solver, err = PCCU1D.NewSolver(sim.Model, W0, sim.Mesh.Dx, cfg, sim.BCs); err != nil {
		return nil, fmt.Errorf("%s with %s: %w", ip.Model, it, err)
	}
	sim.mass0 = sim.Mass()
	return
}

// Mass integrates each layer depth over the interior cells
func (sim *Simulation1D) Mass() (mass []float64) {
	W := sim.Solver.W()
	mass = make([]float64, len(sim.pairs))
	for l, pair := range sim.pairs {
		mass[l] = sim.Mesh.Integrate(W.RowView(pair.Depth))
	}
	return
}

// MassDrift is the largest change of layer mass relative to the initial mass
func (sim *Simulation1D) MassDrift() (drift float64) {
	for l, m := range sim.Mass() {
		drift = math.Max(drift, math.Abs(m-sim.mass0[l])/math.Abs(sim.mass0[l]))
	}
	return
}

// Run steps to FinalTime, recording U every OutputEvery steps
func (sim *Simulation1D) Run(graph bool) (err error) {
	var (
		ip    = sim.Params
		start = time.Now()
		info  PCCU1D.StepInfo
		every = ip.OutputEvery
	)
	if every < 1 {
		every = 1
	}
	if graph {
		sim.openChart()
	}
	sim.PrintInitialization()
	sim.History.Record(sim.Solver)
	sim.plot()
	for {
		if info, err = sim.Solver.Step(ip.FinalTime); err != nil {
			if errors.Is(err, PCCU1D.ErrTerminal) {
				err = nil
			}
			break
		}
		final := sim.Solver.State() == PCCU1D.Terminal
		if info.Step%every == 0 || final {
			sim.History.Record(sim.Solver)
			sim.PrintUpdate(info)
			sim.plot()
		}
		if final {
			break
		}
	}
	sim.PrintFinal(time.Since(start), err)
	if err != nil {
		err = fmt.Errorf("%s stopped at t = %v: %w", ip.Title, sim.Solver.Time(), err)
	}
	return
}

func (sim *Simulation1D) PrintInitialization() {
	sim.Log.WithFields(logrus.Fields{
		"model":      sim.Model.Name(),
		"init":       sim.Params.InitType,
		"nx":         sim.Mesh.Nx,
		"dx":         sim.Mesh.Dx,
		"final_time": sim.Params.FinalTime,
		"scheme":     sim.Solver.Config().Scheme,
		"diffusion":  sim.Solver.Config().Diffusion,
		"mass":       sim.mass0,
	}).Info("solving")
}

func (sim *Simulation1D) PrintUpdate(info PCCU1D.StepInfo) {
	sim.Log.WithFields(logrus.Fields{
		"step":      info.Step,
		"time":      info.Time,
		"dt":        info.Dt,
		"max_speed": info.MaxSpeed,
		"cfl":       info.MaxSpeed * info.Dt / sim.Mesh.Dx,
		"mass":      sim.Mass(),
	}).Debug("update")
}

func (sim *Simulation1D) PrintFinal(elapsed time.Duration, err error) {
	var (
		steps = sim.Solver.Steps()
		rate  float64
	)
	if steps > 0 {
		rate = float64(elapsed.Microseconds()) / float64(sim.Mesh.Nx*steps)
	}
	entry := sim.Log.WithFields(logrus.Fields{
		"steps":      steps,
		"time":       sim.Solver.Time(),
		"mass_drift": sim.MassDrift(),
		"us_per_dof": rate,
		"memory":     utils.ReadMemUsage().String(),
	})
	if err != nil {
		entry.WithError(err).Error("stopped")
		return
	}
	entry.Info("finished")
}

func (sim *Simulation1D) openChart() {
	var (
		levels     = Surfaces(sim.Solver.W(), sim.pairs)
		fmin, fmax = math.Inf(1), math.Inf(-1)
	)
	for _, level := range levels {
		for _, f := range sim.Mesh.Interior(level) {
			fmin, fmax = math.Min(fmin, f), math.Max(fmax, f)
		}
	}
	pad := 0.25 * (fmax - fmin)
	if pad == 0 {
		pad = 1
	}
	sim.Chart = utils.NewLineChart(1280, 720, sim.Mesh.XMin, sim.Mesh.XMax, fmin-pad, fmax+pad)
}

func (sim *Simulation1D) plot() {
	if sim.Chart == nil {
		return
	}
	levels := Surfaces(sim.Solver.W(), sim.pairs)
	sim.Chart.Plot(sim.Mesh.X, levels...)
}

// WriteOutputs writes the NetCDF history and the profile plot when the input
// names the files
func (sim *Simulation1D) WriteOutputs() (err error) {
	var (
		ip = sim.Params
		W  = sim.Solver.W()
	)
	if ip.OutputFile != "" {
		series := &solutionfiles.Series{
			Title:    ip.Title,
			Model:    sim.Model.Name(),
			X:        sim.Mesh.X,
			Z:        sim.Solver.Z(),
			VarNames: sim.Model.VarNames(),
			Times:    sim.History.Times,
			U:        sim.History.U,
		}
		if err = solutionfiles.WriteNetCDFFile(ip.OutputFile, series); err != nil {
			return
		}
		sim.Log.WithField("file", ip.OutputFile).Info("wrote history")
	}
	if ip.PlotFile != "" {
		var (
			levels = Surfaces(W, sim.pairs)
			names  = make([]string, len(levels))
		)
		for l, pair := range sim.pairs {
			names[l] = "surface of " + sim.Model.VarNames()[pair.Depth]
		}
		names[len(levels)-1] = "Z"
		title := fmt.Sprintf("%s, t = %.4g", ip.Title, sim.Solver.Time())
		if err = solutionfiles.PlotProfiles(ip.PlotFile, title, sim.Mesh.X, names, levels); err != nil {
			return
		}
		sim.Log.WithField("file", ip.PlotFile).Info("wrote plot")
	}
	return
}
