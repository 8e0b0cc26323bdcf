package PCCU1D

import (
	"math"

	"github.com/notargets/goswe/utils"
	"gonum.org/v1/gonum/mat"
)

// Model is one governing equation variant. W has one row per variable with
// the topography Z last, and one column per cell including the two ghost
// cells. Each method writes into caller owned buffers and keeps no state
// between calls.
//
// Buffer shapes, for nvars variables and Nx cells:
//
//	F:          Left and Right (nvars-1, Nx-1)
//	S, B:       (nvars-1, Nx-2), cell integrals over the interior cells
//	Spsi, Bpsi: (nvars-1, Nx-1), path integrals across each interface
//	Ainv:       Nx-1 matrices of (nvars-1, nvars-1)
type Model interface {
	Name() string
	VarNames() []string
	DepthPairs() []DepthPair
	ComputeF(Wi *Interfaces, F *Interfaces)
	ComputeS(W utils.Matrix, Wi *Interfaces, S utils.Matrix)
	ComputeB(W utils.Matrix, Wi *Interfaces, B utils.Matrix)
	ComputeSpsi(W utils.Matrix, Wi *Interfaces, Spsi utils.Matrix)
	ComputeBpsi(W utils.Matrix, Wi *Interfaces, Bpsi utils.Matrix)
	ComputeAinv(W utils.Matrix, Wi *Interfaces, Ainv []*mat.Dense)
	// LocalSpeeds fills sp and returns dx / (2 max(ap, -am)), which is +Inf
	// when every speed is zero.
	LocalSpeeds(Wi *Interfaces, dx float64, sp *Speeds) (dtCFL float64)
}

// DepthPair couples a depth row with its flow row. Discharge is true when
// the flow row stores h*u and false when it stores u.
type DepthPair struct {
	Depth, Flow int
	Discharge   bool
}

// Interfaces holds the two reconstructed values at each interface. Column k
// is the interface between cells k and k+1; Left comes from cell k and
// Right from cell k+1.
type Interfaces struct {
	Left, Right utils.Matrix
}

func NewInterfaces(nr, nInterfaces int) *Interfaces {
	return &Interfaces{
		Left:  utils.NewMatrix(nr, nInterfaces),
		Right: utils.NewMatrix(nr, nInterfaces),
	}
}

func (ifs *Interfaces) Dims() (nr, nc int) { return ifs.Left.Dims() }

// Speeds are the one sided local speeds at each interface, Ap >= 0 >= Am
type Speeds struct {
	Ap, Am []float64
}

func NewSpeeds(nInterfaces int) *Speeds {
	return &Speeds{
		Ap: make([]float64, nInterfaces),
		Am: make([]float64, nInterfaces),
	}
}

// Set clamps the extreme characteristic speeds of both sides of interface k
// so that 0 is always included.
func (sp *Speeds) Set(k int, lminL, lmaxL, lminR, lmaxR float64) {
	sp.Ap[k] = math.Max(math.Max(lmaxL, lmaxR), 0)
	sp.Am[k] = math.Min(math.Min(lminL, lminR), 0)
}

// MaxSpeed is max over interfaces of max(ap, -am)
func (sp *Speeds) MaxSpeed() (a float64) {
	for k := range sp.Ap {
		a = math.Max(a, math.Max(sp.Ap[k], -sp.Am[k]))
	}
	return
}

// CFL is the admissible step dx / (2 MaxSpeed)
func (sp *Speeds) CFL(dx float64) float64 {
	a := sp.MaxSpeed()
	if a == 0 {
		return math.Inf(1)
	}
	return dx / (2 * a)
}
