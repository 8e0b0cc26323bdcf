package utils

import (
	"math"
)

// Linspace returns N points evenly spaced on [a, b]
func Linspace(a, b float64, N int) (v []float64) {
	v = make([]float64, N)
	if N == 1 {
		v[0] = a
		return
	}
	dx := (b - a) / float64(N-1)
	for i := range v {
		v[i] = a + float64(i)*dx
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}

// Minmod3 returns the argument of least magnitude when all three share a
// sign, otherwise zero.
func Minmod3(a, b, c float64) float64 {
	switch {
	case a > 0 && b > 0 && c > 0:
		return math.Min(a, math.Min(b, c))
	case a < 0 && b < 0 && c < 0:
		return math.Max(a, math.Max(b, c))
	}
	return 0
}
