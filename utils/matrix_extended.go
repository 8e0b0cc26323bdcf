package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a row major field store: one row per variable, one column per
// cell or interface. Rows are contiguous, so RowView hands out the backing
// slice of a variable without copying.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewMatrixFromRows stacks equal length rows into a Matrix.
func NewMatrixFromRows(rows ...[]float64) (R Matrix) {
	if len(rows) == 0 {
		panic("NewMatrixFromRows needs at least one row")
	}
	var (
		nr, nc = len(rows), len(rows[0])
		data   = make([]float64, 0, nr*nc)
	)
	for i, row := range rows {
		if len(row) != nc {
			panic(fmt.Errorf("row %d has length %d, expected %d", i, len(row), nc))
		}
		data = append(data, row...)
	}
	return NewMatrix(nr, nc, data)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }
func (m Matrix) IsEmpty() bool             { return m.M == nil }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) RowView(i int) []float64 { // Shares storage with the receiver
	return m.M.RawRowView(i)
}

func (m Matrix) Row(i int) (r []float64) { // Does not change receiver
	r = make([]float64, m.M.RawMatrix().Cols)
	copy(r, m.M.RawRowView(i))
	return
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.Data())
	R = NewMatrix(nr, nc, dataR)
	return
}

// SliceRows returns a copy of rows [i1, i2)
func (m Matrix) SliceRows(i1, i2 int) (R Matrix) { // Does not change receiver
	var (
		_, nc = m.Dims()
	)
	R = NewMatrix(i2-i1, nc)
	for i := i1; i < i2; i++ {
		copy(R.RowView(i-i1), m.RowView(i))
	}
	return
}

func (m Matrix) CopyFrom(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	m.checkDims(A)
	copy(m.Data(), A.Data())
	return m
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Zero() Matrix { // Changes receiver
	m.checkWritable()
	m.M.Zero()
	return m
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	m.checkDims(A)
	floats.Add(m.Data(), A.Data())
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.checkWritable()
	floats.Scale(a, m.Data())
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.Data()
	)
	m.checkWritable()
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Min() (min float64) {
	return floats.Min(m.Data())
}

func (m Matrix) Max() (max float64) {
	return floats.Max(m.Data())
}

// MaxAbsDiff is the infinity norm of m - A
func (m Matrix) MaxAbsDiff(A Matrix) (d float64) {
	m.checkDims(A)
	dataA := A.Data()
	for i, val := range m.Data() {
		d = math.Max(d, math.Abs(val-dataA[i]))
	}
	return
}

func (m Matrix) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	formatString := "%s = \n%8.5f\n"
	o = fmt.Sprintf(formatString, name, mat.Formatted(m.M, mat.Squeeze()))
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func (m Matrix) checkDims(A Matrix) {
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nr != nrA || nc != ncA {
		panic(fmt.Errorf("dimension mismatch: [%d,%d] vs [%d,%d]", nr, nc, nrA, ncA))
	}
}
