//go:build cgo && netlib
// +build cgo,netlib

package utils

/*
#cgo LDFLAGS: -lopenblas -llapacke -lgfortran -lm -lpthread
#include <cblas.h>
#include <lapacke.h>
*/
import "C"

import (
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Built with -tags netlib, gonum's dense kernels (the per interface Ainv
// products and the matrix wrappers) run on OpenBLAS.
func init() {
	blas64.Use(netblas.Implementation{})
}
