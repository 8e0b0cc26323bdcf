package PCCU1D

import (
	"math"
)

// evaluate computes the RHS of the current W into the workspace and
// returns the CFL admissible step of that state.
func (s *Solver) evaluate() (dtCFL float64, err error) {
	if s.bc != nil {
		s.bc.Apply(s.w)
	}
	if err = s.reconstruct(s.w); err != nil {
		return
	}
	dtCFL = s.evaluateModel()
	if err = s.assembleFluxes(); err != nil {
		return
	}
	err = s.assembleRHS()
	return
}

// update sets U = a0 U0 + (1 - a0)(U + dt RHS) on the interior cells, the
// Shu-Osher stage form. a0 = 0 is a forward Euler stage.
func (s *Solver) update(dt, a0 float64) error {
	var (
		ws = s.ws
		nu = ws.Nvars - 1
	)
	return s.part.forEach(s.part.interior, func(cMin, cMax int) error {
		for n := 0; n < nu; n++ {
			var (
				u   = s.w.RowView(n)
				u0  = ws.U0.RowView(n)
				rhs = ws.RHS.RowView(n)
			)
			for c := cMin; c < cMax; c++ {
				j := c + 1
				u[j] = a0*u0[j] + (1-a0)*(u[j]+dt*rhs[c])
			}
		}
		return nil
	})
}

// checkState reports the first interior cell with a non-positive depth or a
// non-finite conserved value.
func (s *Solver) checkState() error {
	var (
		nu = s.ws.Nvars - 1
		Nx = s.ws.Nx
	)
	breakdown := func(n, j int, val float64) error {
		return &NumericalBreakdownError{
			Step:     s.steps + 1,
			Cell:     j,
			Variable: s.varNames[n],
			Value:    val,
			Stage:    StageIntegration,
		}
	}
	for _, dp := range s.model.DepthPairs() {
		h := s.w.RowView(dp.Depth)
		for j := 1; j < Nx-1; j++ {
			if !(h[j] > 0) {
				return breakdown(dp.Depth, j, h[j])
			}
		}
	}
	for n := 0; n < nu; n++ {
		u := s.w.RowView(n)
		for j := 1; j < Nx-1; j++ {
			if math.IsNaN(u[j]) || math.IsInf(u[j], 0) {
				return breakdown(n, j, u[j])
			}
		}
	}
	return nil
}

// advance integrates one step of size dt. The RHS of the first stage has
// already been evaluated by the caller on the start of step state.
func (s *Solver) advance(dt float64) (err error) {
	var (
		a0s []float64 // Weight of the start of step state in each stage
	)
	switch s.cfg.Scheme {
	case Euler:
		a0s = []float64{0}
	case SSPRK2:
		a0s = []float64{0, 0.5}
	case SSPRK3:
		a0s = []float64{0, 0.75, 1. / 3.}
	}
	if len(a0s) > 1 {
		for n := 0; n < s.ws.Nvars-1; n++ {
			copy(s.ws.U0.RowView(n), s.w.RowView(n))
		}
	}
	for i, a0 := range a0s {
		if i > 0 {
			if _, err = s.evaluate(); err != nil {
				return
			}
		}
		if err = s.update(dt, a0); err != nil {
			return
		}
	}
	if s.bc != nil {
		s.bc.Apply(s.w)
	}
	return s.checkState()
}
