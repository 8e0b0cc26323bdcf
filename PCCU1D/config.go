package PCCU1D

import (
	"fmt"
	"strings"
)

type TimeScheme uint8

const (
	Euler TimeScheme = iota
	SSPRK2
	SSPRK3
)

var timeSchemeNames = map[TimeScheme]string{
	Euler:  "Euler",
	SSPRK2: "SSPRK2",
	SSPRK3: "SSPRK3",
}

func (ts TimeScheme) String() string {
	if name, ok := timeSchemeNames[ts]; ok {
		return name
	}
	return fmt.Sprintf("TimeScheme(%d)", ts)
}

// ParseTimeScheme is case-insensitive; an empty name selects Euler
func ParseTimeScheme(name string) (ts TimeScheme, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Euler, nil
	}
	for ts, tsName := range timeSchemeNames {
		if strings.EqualFold(name, tsName) {
			return ts, nil
		}
	}
	err = configErrorf("TimeScheme", "unknown time scheme %q, use one of Euler, SSPRK2, SSPRK3", name)
	return
}

// Diffusion selects the numerical diffusion of the central upwind flux
type Diffusion uint8

const (
	AutoDiffusion Diffusion = iota // PathJacobian for one layer, StateJump for more
	PathJacobian                   // ap am/(ap - am) Ainv (F(R) - F(L) - Psi)
	StateJump                      // ap am/(ap - am) (U(R) - U(L)), lowest depth taken as the level h + Z
)

var diffusionNames = map[Diffusion]string{
	AutoDiffusion: "Auto",
	PathJacobian:  "PathJacobian",
	StateJump:     "StateJump",
}

func (d Diffusion) String() string {
	if name, ok := diffusionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Diffusion(%d)", d)
}

// ParseDiffusion is case-insensitive; an empty name selects AutoDiffusion
func ParseDiffusion(name string) (d Diffusion, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AutoDiffusion, nil
	}
	for d, dName := range diffusionNames {
		if strings.EqualFold(name, dName) {
			return d, nil
		}
	}
	err = configErrorf("Diffusion", "unknown diffusion %q, use one of Auto, PathJacobian, StateJump", name)
	return
}

// Resolve replaces AutoDiffusion by the choice for a model with the given
// number of layers. The two layer Ainv grows like 1/(g(1-r)), close
// densities turn its linearization error at a jump into negative depths.
func (d Diffusion) Resolve(layers int) Diffusion {
	if d != AutoDiffusion {
		return d
	}
	if layers > 1 {
		return StateJump
	}
	return PathJacobian
}

// Config holds the numerical parameters of a run.
//
// Theta is the minmod limiter parameter in [1,2], larger is less dissipative.
// Epsilon is the floor added to h^4 in the desingularized velocity, only
// depths with h^4 below it are affected.
// DtFact in (0,1] multiplies the CFL admissible step.
// ParallelDegree > 1 splits per cell and per interface loops across goroutines.
type Config struct {
	Theta          float64
	Epsilon        float64
	DtFact         float64
	Scheme         TimeScheme
	Diffusion      Diffusion
	ParallelDegree int
}

func DefaultConfig() Config {
	return Config{
		Theta:          1.3,
		Epsilon:        1.e-10,
		DtFact:         0.5,
		Scheme:         Euler,
		Diffusion:      AutoDiffusion,
		ParallelDegree: 1,
	}
}

func (c Config) Validate() error {
	switch {
	case !(c.Theta >= 1 && c.Theta <= 2):
		return configErrorf("Theta", "must lie in [1,2], have %v", c.Theta)
	case !(c.Epsilon > 0):
		return configErrorf("Epsilon", "must be positive, have %v", c.Epsilon)
	case !(c.DtFact > 0 && c.DtFact <= 1):
		return configErrorf("DtFact", "must lie in (0,1], have %v", c.DtFact)
	case c.ParallelDegree < 0:
		return configErrorf("ParallelDegree", "must not be negative, have %d", c.ParallelDegree)
	}
	if _, ok := timeSchemeNames[c.Scheme]; !ok {
		return configErrorf("Scheme", "unknown time scheme %d", c.Scheme)
	}
	if _, ok := diffusionNames[c.Diffusion]; !ok {
		return configErrorf("Diffusion", "unknown diffusion %d", c.Diffusion)
	}
	return nil
}

// PhysicalParams are shared by every model: gravity G and the density
// ratio R of the upper to the lower fluid.
type PhysicalParams struct {
	G, R float64
}

func DefaultPhysicalParams(layers int) PhysicalParams {
	if layers == 2 {
		return PhysicalParams{G: 9.81, R: 0.98}
	}
	return PhysicalParams{G: 9.81, R: 0}
}

// Validate requires G > 0 and 0 <= R < 1
func (p PhysicalParams) Validate() error {
	if !(p.G > 0) {
		return configErrorf("G", "gravity must be positive, have %v", p.G)
	}
	if !(p.R >= 0 && p.R < 1) {
		return configErrorf("R", "density ratio must lie in [0,1), have %v", p.R)
	}
	return nil
}
