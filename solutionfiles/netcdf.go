package solutionfiles

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctessum/cdf"
	"github.com/notargets/goswe/utils"
)

// Series is a time history of the conserved variables on a fixed mesh.
// VarNames lists every row of W, the topography last; each U[i] holds the
// conserved rows at Times[i], ghost cells included.
type Series struct {
	Title, Model string
	X, Z         []float64
	VarNames     []string
	Times        []float64
	U            []utils.Matrix
}

func (s *Series) check() error {
	var (
		Nx    = len(s.X)
		nvars = len(s.VarNames)
	)
	switch {
	case nvars < 2:
		return fmt.Errorf("need at least one conserved variable and Z, have %v", s.VarNames)
	case len(s.Z) != Nx:
		return fmt.Errorf("len(Z) = %d, len(X) = %d", len(s.Z), Nx)
	case len(s.Times) != len(s.U):
		return fmt.Errorf("%d times for %d snapshots", len(s.Times), len(s.U))
	}
	for i, U := range s.U {
		if nr, nc := U.Dims(); nr != nvars-1 || nc != Nx {
			return fmt.Errorf("snapshot %d is %dx%d, expected %dx%d", i, nr, nc, nvars-1, Nx)
		}
	}
	return nil
}

// WriteNetCDF writes the series with time as the record dimension and
// updates the numrecs field of the header
func WriteNetCDF(w *os.File, s *Series) (err error) {
	if err = s.check(); err != nil {
		return
	}
	var (
		Nx        = len(s.X)
		conserved = s.VarNames[:len(s.VarNames)-1]
	)
	h := cdf.NewHeader([]string{"time", "x"}, []int{0, Nx})
	h.AddAttribute("", "title", s.Title)
	h.AddAttribute("", "model", s.Model)
	h.AddAttribute("", "var_names", strings.Join(s.VarNames, ","))
	h.AddVariable("x", []string{"x"}, []float64{0})
	h.AddAttribute("x", "description", "cell centre, ghost cells included")
	h.AddVariable("Z", []string{"x"}, []float64{0})
	h.AddAttribute("Z", "description", "bottom topography")
	h.AddVariable("time", []string{"time"}, []float64{0})
	for _, name := range conserved {
		h.AddVariable(name, []string{"time", "x"}, []float64{0})
	}
	h.Define()
	if errs := h.Check(); len(errs) > 0 {
		return fmt.Errorf("defining netcdf header: %v", errs[0])
	}
	f, err := cdf.Create(w, h) // writes the header to w
	if err != nil {
		return
	}
	if err = writeNCF(f, "x", []int{0}, []int{Nx}, s.X); err != nil {
		return
	}
	if err = writeNCF(f, "Z", []int{0}, []int{Nx}, s.Z); err != nil {
		return
	}
	for i, U := range s.U {
		if err = writeNCF(f, "time", []int{i}, []int{i + 1}, []float64{s.Times[i]}); err != nil {
			return
		}
		for n, name := range conserved {
			if err = writeNCF(f, name, []int{i, 0}, []int{i + 1, Nx}, U.RowView(n)); err != nil {
				return
			}
		}
	}
	return cdf.UpdateNumRecs(w)
}

func writeNCF(f *cdf.File, Var string, start, end []int, data []float64) error {
	w := f.Writer(Var, start, end)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s at %v: %v", Var, start, err)
	}
	return nil
}

// ReadNetCDF reads a series written by WriteNetCDF. The number of records
// follows from the file size.
func ReadNetCDF(r *os.File) (s *Series, err error) {
	fi, err := r.Stat()
	if err != nil {
		return
	}
	f, err := cdf.Open(r)
	if err != nil {
		return
	}
	s = &Series{}
	s.Title, _ = f.Header.GetAttribute("", "title").(string)
	s.Model, _ = f.Header.GetAttribute("", "model").(string)
	names, _ := f.Header.GetAttribute("", "var_names").(string)
	if names == "" {
		return nil, fmt.Errorf("netcdf file has no var_names attribute")
	}
	s.VarNames = strings.Split(names, ",")
	if s.X, err = readNCF(f, "x", nil, nil, -1); err != nil {
		return nil, err
	}
	if s.Z, err = readNCF(f, "Z", nil, nil, -1); err != nil {
		return nil, err
	}
	var (
		Nx        = len(s.X)
		nt        = int(f.Header.NumRecs(fi.Size()))
		conserved = s.VarNames[:len(s.VarNames)-1]
	)
	if nt == 0 {
		return
	}
	if s.Times, err = readNCF(f, "time", []int{0}, []int{nt - 1}, nt); err != nil {
		return nil, err
	}
	s.U = make([]utils.Matrix, nt)
	for i := range s.U {
		s.U[i] = utils.NewMatrix(len(conserved), Nx)
	}
	for n, name := range conserved {
		var data []float64
		if data, err = readNCF(f, name, []int{0, 0}, []int{nt - 1, Nx - 1}, nt*Nx); err != nil {
			return nil, err
		}
		for i := 0; i < nt; i++ {
			copy(s.U[i].RowView(n), data[i*Nx:(i+1)*Nx])
		}
	}
	return
}

// readNCF reads n values of Var from begin to end, both inclusive. Nil
// corners and n < 0 read a whole fixed size variable.
func readNCF(f *cdf.File, Var string, begin, end []int, n int) ([]float64, error) {
	if f.Header.Lengths(Var) == nil {
		return nil, fmt.Errorf("netcdf file has no variable %s", Var)
	}
	r := f.Reader(Var, begin, end)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading %s: %v", Var, err)
	}
	data, ok := buf.([]float64)
	if !ok {
		return nil, fmt.Errorf("%s is not double precision", Var)
	}
	return data, nil
}

func WriteNetCDFFile(fileName string, s *Series) (err error) {
	ff, err := os.Create(fileName)
	if err != nil {
		return
	}
	if err = WriteNetCDF(ff, s); err != nil {
		ff.Close()
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	return ff.Close()
}

func ReadNetCDFFile(fileName string) (s *Series, err error) {
	ff, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer ff.Close()
	if s, err = ReadNetCDF(ff); err != nil {
		err = fmt.Errorf("reading %s: %w", fileName, err)
	}
	return
}
