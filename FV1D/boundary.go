package FV1D

import (
	"fmt"

	"github.com/notargets/goswe/utils"
)

type BoundaryCondition struct {
	Type  utils.BCType
	Value float64 // Dirichlet only
}

// BoundaryConditions holds one rule per end for each conserved row of W.
// The last row of W (the topography) is never touched.
type BoundaryConditions struct {
	Left, Right []BoundaryCondition
}

// NewBoundaryConditions parses one [left, right] pair per conserved
// variable. A rule is a name understood by utils.ParseBCName or a number,
// which is taken as a fixed ghost value.
func NewBoundaryConditions(rules [][2]string) (bcs *BoundaryConditions, err error) {
	bcs = &BoundaryConditions{
		Left:  make([]BoundaryCondition, len(rules)),
		Right: make([]BoundaryCondition, len(rules)),
	}
	for n, pair := range rules {
		for side, rule := range pair {
			bc, value, ok := utils.ParseBCName(rule)
			if !ok {
				err = fmt.Errorf("unknown boundary rule %q for variable %d", rule, n)
				return nil, err
			}
			if side == 0 {
				bcs.Left[n] = BoundaryCondition{bc, value}
			} else {
				bcs.Right[n] = BoundaryCondition{bc, value}
			}
		}
	}
	return
}

// NewUniformBoundaryConditions applies the same rule at both ends of nvars rows
func NewUniformBoundaryConditions(nvars int, bc BoundaryCondition) (bcs *BoundaryConditions) {
	bcs = &BoundaryConditions{
		Left:  make([]BoundaryCondition, nvars),
		Right: make([]BoundaryCondition, nvars),
	}
	for n := 0; n < nvars; n++ {
		bcs.Left[n], bcs.Right[n] = bc, bc
	}
	return
}

// NumVars is the number of rows the rules cover
func (bcs *BoundaryConditions) NumVars() int { return len(bcs.Left) }

// Apply fills the ghost cells of W in place from the interior cells
func (bcs *BoundaryConditions) Apply(W utils.Matrix) {
	var (
		nr, Nx = W.Dims()
	)
	if bcs.NumVars() > nr-1 {
		panic(fmt.Errorf("%d boundary rules for %d conserved rows", bcs.NumVars(), nr-1))
	}
	for n := 0; n < bcs.NumVars(); n++ {
		row := W.RowView(n)
		row[0] = ghostValue(bcs.Left[n], row[0], row[1], row[2])
		row[Nx-1] = ghostValue(bcs.Right[n], row[Nx-1], row[Nx-2], row[Nx-3])
	}
}

// ghostValue computes the ghost from the nearest (in1) and second nearest
// (in2) interior cells
func ghostValue(bc BoundaryCondition, ghost, in1, in2 float64) float64 {
	switch bc.Type {
	case utils.BCSymmetry:
		return in1
	case utils.BCAntiSymmetry:
		return -in1
	case utils.BCDirichlet:
		return bc.Value
	case utils.BCOpen:
		return 2*in1 - in2
	}
	return ghost
}
