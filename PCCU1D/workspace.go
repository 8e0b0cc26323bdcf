package PCCU1D

import (
	"github.com/notargets/goswe/utils"
	"gonum.org/v1/gonum/mat"
)

// Workspace holds every buffer derived from W during one RHS evaluation. It
// is allocated once per Solver and fully overwritten by each evaluation, so
// no value survives from one step to the next.
type Workspace struct {
	Nvars, Nx int
	Wr        utils.Matrix // W with velocity rows replaced by discharge, the limiter input
	Wi        *Interfaces  // Reconstructed states (nvars, Nx-1)
	F         *Interfaces  // Physical flux at both sides (nvars-1, Nx-1)
	S, B      utils.Matrix // Cell sources (nvars-1, Nx-2)
	Spsi      utils.Matrix // (nvars-1, Nx-1)
	Bpsi      utils.Matrix // (nvars-1, Nx-1)
	Psi       utils.Matrix // Spsi + Bpsi
	Ainv      []*mat.Dense
	Speeds    *Speeds
	Wp, Wm    []float64    // Upwind shares of Psi sent to the right and left cells
	H         utils.Matrix // Numerical flux (nvars-1, Nx-1)
	DivH      utils.Matrix // (H[j]-H[j-1])/dx for interior cells (nvars-1, Nx-2)
	RHS       utils.Matrix // dU/dt for interior cells (nvars-1, Nx-2)
	U0        utils.Matrix // Start of step copy of the conserved rows, multistage schemes
}

func NewWorkspace(nvars, Nx int) (ws *Workspace) {
	var (
		nu   = nvars - 1
		nInt = Nx - 1
		nC   = Nx - 2
	)
	ws = &Workspace{
		Nvars:  nvars,
		Nx:     Nx,
		Wr:     utils.NewMatrix(nvars, Nx),
		Wi:     NewInterfaces(nvars, nInt),
		F:      NewInterfaces(nu, nInt),
		S:      utils.NewMatrix(nu, nC),
		B:      utils.NewMatrix(nu, nC),
		Spsi:   utils.NewMatrix(nu, nInt),
		Bpsi:   utils.NewMatrix(nu, nInt),
		Psi:    utils.NewMatrix(nu, nInt),
		Ainv:   make([]*mat.Dense, nInt),
		Speeds: NewSpeeds(nInt),
		Wp:     make([]float64, nInt),
		Wm:     make([]float64, nInt),
		H:      utils.NewMatrix(nu, nInt),
		DivH:   utils.NewMatrix(nu, nC),
		RHS:    utils.NewMatrix(nu, nC),
		U0:     utils.NewMatrix(nu, Nx),
	}
	for k := range ws.Ainv {
		ws.Ainv[k] = mat.NewDense(nu, nu, nil)
	}
	return
}
