package dam_break

import (
	"fmt"
	"math"
)

// Stoker is the exact solution of the wet bed dam break for one layer
// shallow water on a flat bottom: a left going rarefaction, a constant
// middle state and a right going bore.
type Stoker struct {
	HL, HR, G, X0 float64
	HM, UM        float64 // Middle state
	ShockSpeed    float64
}

func NewStoker(hl, hr, g, x0 float64) (s *Stoker, err error) {
	if !(hl > hr && hr > 0 && g > 0) {
		err = fmt.Errorf("dam break needs hl > hr > 0 and g > 0, have hl = %v, hr = %v, g = %v", hl, hr, g)
		return
	}
	s = &Stoker{HL: hl, HR: hr, G: g, X0: x0}
	s.HM = bisect(s.middleResidual, hr, hl)
	s.UM = 2 * (math.Sqrt(g*hl) - math.Sqrt(g*s.HM))
	s.ShockSpeed = s.HM * s.UM / (s.HM - s.HR)
	return
}

// middleResidual is zero when the velocity behind the rarefaction equals
// the velocity behind the bore
func (s *Stoker) middleResidual(hm float64) float64 {
	var (
		g      = s.G
		uRaref = 2 * (math.Sqrt(g*s.HL) - math.Sqrt(g*hm))
		uBore  = (hm - s.HR) * math.Sqrt(0.5*g*(hm+s.HR)/(hm*s.HR))
	)
	return uRaref - uBore
}

// Positions returns the rarefaction head and tail and the bore at time t
func (s *Stoker) Positions(t float64) (xHead, xTail, xShock float64) {
	xHead = s.X0 - t*math.Sqrt(s.G*s.HL)
	xTail = s.X0 + t*(s.UM-math.Sqrt(s.G*s.HM))
	xShock = s.X0 + t*s.ShockSpeed
	return
}

func (s *Stoker) Eval(x, t float64) (h, u float64) {
	if t <= 0 {
		if x < s.X0 {
			return s.HL, 0
		}
		return s.HR, 0
	}
	xHead, xTail, xShock := s.Positions(t)
	switch {
	case x < xHead:
		h, u = s.HL, 0
	case x < xTail:
		xi := (x - s.X0) / t
		cl := math.Sqrt(s.G * s.HL)
		u = 2. / 3. * (cl + xi)
		h = (2*cl - xi) * (2*cl - xi) / (9 * s.G)
	case x < xShock:
		h, u = s.HM, s.UM
	default:
		h, u = s.HR, 0
	}
	return
}

// Profile evaluates depth and velocity at each X
func (s *Stoker) Profile(X []float64, t float64) (H, U []float64) {
	H, U = make([]float64, len(X)), make([]float64, len(X))
	for i, x := range X {
		H[i], U[i] = s.Eval(x, t)
	}
	return
}

// bisect finds a root of a monotone f bracketed by [a, b]
func bisect(f func(float64) float64, a, b float64) float64 {
	var (
		fa  = f(a)
		tol = 1.e-14
	)
	for i := 0; i < 200 && b-a > tol*math.Abs(b); i++ {
		c := 0.5 * (a + b)
		fc := f(c)
		if fc == 0 {
			return c
		}
		if (fc > 0) == (fa > 0) {
			a, fa = c, fc
		} else {
			b = c
		}
	}
	return 0.5 * (a + b)
}
