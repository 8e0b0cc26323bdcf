package PCCU1D

import (
	"math"

	"github.com/notargets/goswe/FV1D"
	"github.com/notargets/goswe/utils"
)

// GhostFiller sets the ghost cells of W in place, FV1D.BoundaryConditions
// is the usual implementation
type GhostFiller interface {
	Apply(W utils.Matrix)
}

type SolverState uint8

const (
	Init SolverState = iota
	Stepping
	Terminal
)

type StepInfo struct {
	Step     int
	Time     float64
	Dt       float64
	MaxSpeed float64 // max over interfaces of max(ap, -am) at the start of the step
}

// History holds U snapshots, ghost cells included, and their times
type History struct {
	Times []float64
	U     []utils.Matrix
}

type Solver struct {
	model    Model
	varNames []string
	lowest   int // Depth row of the lowest layer
	cfg      Config
	dx       float64
	bc       GhostFiller
	w        utils.Matrix
	ws       *Workspace
	div      utils.CSR
	part     *partitions
	time     float64
	steps    int
	state    SolverState
	termErr  error
}

// NewSolver checks every argument before any stepping. W0 is copied, the
// Solver owns its state from here on. bc may be nil when the caller keeps
// the ghost cells of W0 fixed.
func NewSolver(model Model, W0 utils.Matrix, dx float64, cfg Config, bc GhostFiller) (s *Solver, err error) {
	if model == nil {
		err = configErrorf("Model", "no model given")
		return
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	if W0.IsEmpty() {
		err = configErrorf("W0", "no initial state given")
		return
	}
	var (
		varNames = model.VarNames()
		nr, Nx   = W0.Dims()
	)
	switch {
	case nr != len(varNames):
		err = configErrorf("W0", "model %s has %d variables %v, W0 has %d rows",
			model.Name(), len(varNames), varNames, nr)
	case Nx < 3:
		err = configErrorf("W0", "need at least 3 cells including 2 ghost cells, have %d", Nx)
	case !(dx > 0) || math.IsInf(dx, 0):
		err = configErrorf("dx", "must be positive and finite, have %v", dx)
	}
	if err != nil {
		return
	}
	if i, j := utils.FirstNonFinite(W0); i >= 0 {
		err = configErrorf("W0", "%s is %v in cell %d", varNames[i], W0.At(i, j), j)
		return
	}
	pairs := model.DepthPairs()
	if len(pairs) == 0 {
		err = configErrorf("Model", "model %s has no depth pairs", model.Name())
		return
	}
	for _, dp := range pairs {
		if dp.Depth >= nr-1 || dp.Flow >= nr-1 {
			err = configErrorf("Model", "depth pair %v addresses the topography row", dp)
			return
		}
		h := W0.RowView(dp.Depth)
		for j := 1; j < Nx-1; j++ {
			if !(h[j] > 0) {
				err = configErrorf("W0", "%s must be positive in the interior, is %v in cell %d",
					varNames[dp.Depth], h[j], j)
				return
			}
		}
	}
	if cfg.ParallelDegree < 1 {
		cfg.ParallelDegree = 1
	}
	cfg.Diffusion = cfg.Diffusion.Resolve(len(pairs))
	s = &Solver{
		model:    model,
		varNames: varNames,
		lowest:   pairs[len(pairs)-1].Depth,
		cfg:      cfg,
		dx:       dx,
		bc:       bc,
		w:        W0.Copy(),
		ws:       NewWorkspace(nr, Nx),
		div:      FV1D.NewDivergence(Nx, dx),
		part:     newPartitions(cfg.ParallelDegree, Nx),
		state:    Init,
	}
	return
}

// RHS evaluates dU/dt of the current state into the workspace and returns
// the CFL admissible step for it.
func (s *Solver) RHS() (dtCFL float64, err error) {
	return s.evaluate()
}

// Step advances one time step, shortened so that Time does not pass tmax.
// Errors are terminal: every later call returns the same error.
func (s *Solver) Step(tmax float64) (info StepInfo, err error) {
	if s.state == Terminal {
		if s.termErr != nil {
			return info, s.termErr
		}
		return info, ErrTerminal
	}
	if s.time >= tmax {
		s.state = Terminal
		return info, ErrTerminal
	}
	s.state = Stepping
	var dtCFL float64
	if dtCFL, err = s.evaluate(); err != nil {
		return info, s.terminate(err)
	}
	if math.IsInf(dtCFL, 1) {
		return info, s.terminate(&DegenerateSpeedPairError{Step: s.steps + 1, Time: s.time})
	}
	var (
		dt    = s.cfg.DtFact * dtCFL
		final bool
	)
	if s.time+dt >= tmax {
		dt, final = tmax-s.time, true
	}
	if err = s.advance(dt); err != nil {
		return info, s.terminate(err)
	}
	s.steps++
	if final {
		s.time = tmax
		s.state = Terminal
	} else {
		s.time += dt
	}
	info = StepInfo{
		Step:     s.steps,
		Time:     s.time,
		Dt:       dt,
		MaxSpeed: s.dx / (2 * dtCFL),
	}
	return
}

func (s *Solver) terminate(err error) error {
	s.state = Terminal
	s.termErr = err
	return err
}

// Run steps until tmax, recording U every `every` steps plus the initial
// and final states. On error the history up to the failure is returned.
func (s *Solver) Run(tmax float64, every int) (h *History, err error) {
	if every < 1 {
		every = 1
	}
	h = &History{}
	h.Record(s)
	for s.state != Terminal {
		if _, err = s.Step(tmax); err != nil {
			if err == ErrTerminal {
				err = nil
			}
			break
		}
		if s.steps%every == 0 || s.state == Terminal {
			h.Record(s)
		}
	}
	return
}

// Record appends the current time and a copy of U
func (h *History) Record(s *Solver) {
	h.Times = append(h.Times, s.time)
	h.U = append(h.U, s.U())
}

func (s *Solver) W() utils.Matrix       { return s.w }
func (s *Solver) Time() float64         { return s.time }
func (s *Solver) Steps() int            { return s.steps }
func (s *Solver) State() SolverState    { return s.state }
func (s *Solver) Model() Model          { return s.model }
func (s *Solver) Config() Config        { return s.cfg }
func (s *Solver) Dx() float64           { return s.dx }
func (s *Solver) Workspace() *Workspace { return s.ws }
func (s *Solver) U() utils.Matrix       { return s.w.SliceRows(0, s.ws.Nvars-1) }
func (s *Solver) Z() []float64          { return s.w.RowView(s.ws.Nvars - 1) }
