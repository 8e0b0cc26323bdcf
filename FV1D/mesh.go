package FV1D

import (
	"fmt"

	"github.com/notargets/goswe/utils"
	"gonum.org/v1/gonum/floats"
)

// Mesh1D is a uniform cell centred grid. The first and last cells are ghost
// cells, so a mesh of Nx cells has Nx-2 interior cells and Nx-1 interfaces.
// Interface k separates cells k and k+1.
type Mesh1D struct {
	Nx         int
	XMin, XMax float64 // Centres of the two ghost cells
	Dx         float64
	X          []float64 // Cell centres, ghost cells included
	Div        utils.CSR // Interface to cell difference, scaled by 1/Dx
}

func NewMesh1D(xmin, xmax float64, Nx int) (m *Mesh1D, err error) {
	if Nx < 3 {
		err = fmt.Errorf("need at least 3 cells (one interior cell and two ghost cells), have %d", Nx)
		return
	}
	if !(xmax > xmin) {
		err = fmt.Errorf("empty domain: xmin = %v, xmax = %v", xmin, xmax)
		return
	}
	m = &Mesh1D{
		Nx:   Nx,
		XMin: xmin,
		XMax: xmax,
		Dx:   (xmax - xmin) / float64(Nx-1),
		X:    utils.Linspace(xmin, xmax, Nx),
	}
	m.Div = NewDivergence(Nx, m.Dx)
	return
}

// NewDivergence returns the (Nx-2)x(Nx-1) operator mapping interface values
// H to (H[j]-H[j-1])/dx for interior cell j.
func NewDivergence(Nx int, dx float64) (D utils.CSR) {
	var (
		Ncells = Nx - 2
		Nint   = Nx - 1
	)
	dok := utils.NewDOK(Ncells, Nint)
	for i := 0; i < Ncells; i++ {
		// Interior cell i+1 is bounded by interfaces i and i+1
		dok.Set(i, i, -1/dx)
		dok.Set(i, i+1, 1/dx)
	}
	dok.SetReadOnly("Div")
	D = dok.ToCSR()
	return
}

// Interior returns the sub-slice of a cell row without the ghost cells
func (m *Mesh1D) Interior(row []float64) []float64 {
	return row[1 : m.Nx-1]
}

// Integrate is the midpoint rule over the interior cells of a cell row
func (m *Mesh1D) Integrate(row []float64) float64 {
	return floats.Sum(m.Interior(row)) * m.Dx
}
