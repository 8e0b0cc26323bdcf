package Simulation1D

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/utils"
)

type InitType uint8

const (
	DamBreak InitType = iota
	LakeAtRest
	GaussianBore
	TwoLayerRiemann
	TwoLayerAtRest
)

var (
	InitNames = map[string]InitType{
		"dambreak":        DamBreak,
		"lakeatrest":      LakeAtRest,
		"gaussianbore":    GaussianBore,
		"twolayerriemann": TwoLayerRiemann,
		"twolayeratrest":  TwoLayerAtRest,
	}
	initPrintNames = []string{"DamBreak", "LakeAtRest", "GaussianBore", "TwoLayerRiemann", "TwoLayerAtRest"}
)

func (it InitType) String() string { return initPrintNames[it] }

func ParseInitType(name string) (it InitType, err error) {
	var ok bool
	if it, ok = InitNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = &PCCU1D.ConfigurationError{
			Field:  "InitType",
			Reason: fmt.Sprintf("unknown initial condition %q, use one of %v", name, initPrintNames),
		}
	}
	return
}

type BottomType uint8

const (
	Flat BottomType = iota
	Bump
	Slope
)

var BottomNames = map[string]BottomType{
	"":      Flat,
	"flat":  Flat,
	"bump":  Bump,
	"slope": Slope,
}

func ParseBottomType(name string) (bt BottomType, err error) {
	var ok bool
	if bt, ok = BottomNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = &PCCU1D.ConfigurationError{
			Field:  "Bottom",
			Reason: fmt.Sprintf("unknown bottom %q, use one of flat, bump, slope", name),
		}
	}
	return
}

// Diaz 2019, Example 5.3: [h1, q1, h2, q2] on each side of the jump
var (
	diazLeft  = [4]float64{1.22582, -0.03866, 0.75325, 0.02893}
	diazRight = [4]float64{0.37002, -0.18684, 1.59310, 0.17416}
)

// initDefaults are the recognized InitParams keys and their values when unset
var initDefaults = map[string]float64{
	"x0":         math.NaN(), // Centre of the domain
	"hL":         1,
	"hR":         0.5,
	"eta":        1,
	"eta1":       1,
	"eta2":       0.5,
	"Hmax":       5,
	"h0":         1,
	"sigma":      0.2,
	"zb":         0,
	"bumpHeight": 0.2,
	"bumpCenter": math.NaN(), // Centre of the domain
	"bumpWidth":  0.5,
	"slope":      0.1,
}

// InitParams resolves the user parameters against initDefaults
type InitParams struct {
	values map[string]float64
}

func NewInitParams(user map[string]float64, xmin, xmax float64) (ip InitParams, err error) {
	ip.values = make(map[string]float64, len(initDefaults))
	for key, val := range initDefaults {
		ip.values[key] = val
	}
	for key, val := range user {
		canon, ok := canonicalKey(key)
		if !ok {
			err = &PCCU1D.ConfigurationError{
				Field:  "InitParams",
				Reason: fmt.Sprintf("unknown parameter %q, use one of %v", key, sortedInitKeys()),
			}
			return
		}
		ip.values[canon] = val
	}
	for _, key := range []string{"x0", "bumpCenter"} {
		if math.IsNaN(ip.values[key]) {
			ip.values[key] = 0.5 * (xmin + xmax)
		}
	}
	return
}

func (ip InitParams) Get(key string) float64 { return ip.values[key] }

func canonicalKey(key string) (string, bool) {
	for canon := range initDefaults {
		if strings.EqualFold(canon, key) {
			return canon, true
		}
	}
	return "", false
}

func sortedInitKeys() (keys []string) {
	for key := range initDefaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

// BottomProfile evaluates the topography at each x
func BottomProfile(bt BottomType, X []float64, p InitParams) (Z []float64) {
	var (
		zb = p.Get("zb")
	)
	Z = make([]float64, len(X))
	for i, x := range X {
		switch bt {
		case Flat:
			Z[i] = zb
		case Bump:
			var (
				xc = p.Get("bumpCenter")
				hw = 0.5 * p.Get("bumpWidth")
			)
			Z[i] = zb
			if math.Abs(x-xc) < hw {
				c := math.Cos(0.5 * math.Pi * (x - xc) / hw)
				Z[i] += p.Get("bumpHeight") * c * c
			}
		case Slope:
			Z[i] = zb + p.Get("slope")*(x-X[0])
		}
	}
	return
}

// layerState holds depth and velocity per layer, upper layer first
type layerState struct {
	h, u [][]float64
}

func newLayerState(layers, Nx int) (ls layerState) {
	ls.h, ls.u = make([][]float64, layers), make([][]float64, layers)
	for l := 0; l < layers; l++ {
		ls.h[l], ls.u[l] = make([]float64, Nx), make([]float64, Nx)
	}
	return
}

// InitialState builds W for a model from a named initial condition. Depths
// follow from free surface levels over Z, so the resting states are exact
// steady states of the discretization for any bottom.
func InitialState(it InitType, model PCCU1D.Model, X, Z []float64, p InitParams) (W utils.Matrix, err error) {
	var (
		pairs  = model.DepthPairs()
		layers = len(pairs)
		Nx     = len(X)
		ls     = newLayerState(layers, Nx)
		x0     = p.Get("x0")
	)
	needLayers := func(n int) error {
		if layers != n {
			return &PCCU1D.ConfigurationError{
				Field:  "InitType",
				Reason: fmt.Sprintf("%s needs a %d layer model, %s has %d", it, n, model.Name(), layers),
			}
		}
		return nil
	}
	switch it {
	case DamBreak:
		if err = needLayers(1); err != nil {
			return
		}
		for i, x := range X {
			if x < x0 {
				ls.h[0][i] = p.Get("hL") - Z[i]
			} else {
				ls.h[0][i] = p.Get("hR") - Z[i]
			}
		}
	case LakeAtRest:
		if err = needLayers(1); err != nil {
			return
		}
		for i := range X {
			ls.h[0][i] = p.Get("eta") - Z[i]
		}
	case GaussianBore:
		var (
			h0, sigma = p.Get("h0"), p.Get("sigma")
		)
		for i, x := range X {
			interface2 := 1 + h0*math.Exp(-(x-x0)*(x-x0)/(sigma*sigma))
			if layers == 1 {
				ls.h[0][i] = interface2 - Z[i]
				continue
			}
			ls.h[0][i] = p.Get("Hmax") - interface2
			ls.h[1][i] = interface2 - Z[i]
		}
	case TwoLayerRiemann:
		if err = needLayers(2); err != nil {
			return
		}
		for i, x := range X {
			st := diazRight
			if x < x0 {
				st = diazLeft
			}
			ls.h[0][i], ls.u[0][i] = st[0], st[1]/st[0]
			ls.h[1][i], ls.u[1][i] = st[2], st[3]/st[2]
		}
	case TwoLayerAtRest:
		if err = needLayers(2); err != nil {
			return
		}
		for i := range X {
			ls.h[0][i] = p.Get("eta1") - p.Get("eta2")
			ls.h[1][i] = p.Get("eta2") - Z[i]
		}
	default:
		err = &PCCU1D.ConfigurationError{Field: "InitType", Reason: fmt.Sprintf("unsupported initial condition %d", it)}
		return
	}
	nvars := len(model.VarNames())
	W = utils.NewMatrix(nvars, Nx)
	for l, pair := range pairs {
		var (
			h    = W.RowView(pair.Depth)
			flow = W.RowView(pair.Flow)
		)
		copy(h, ls.h[l])
		for i := range flow {
			flow[i] = ls.u[l][i]
			if pair.Discharge {
				flow[i] *= ls.h[l][i]
			}
		}
	}
	W.SetRow(nvars-1, Z)
	return
}

// Surfaces returns the level of the top of each layer, upper layer first,
// followed by Z
func Surfaces(W utils.Matrix, pairs []PCCU1D.DepthPair) (levels [][]float64) {
	var (
		nr, _ = W.Dims()
		Z     = W.Row(nr - 1)
		below = W.Row(nr - 1)
	)
	levels = make([][]float64, len(pairs)+1)
	for l := len(pairs) - 1; l >= 0; l-- {
		h := W.RowView(pairs[l].Depth)
		for i := range below {
			below[i] += h[i]
		}
		levels[l] = append([]float64(nil), below...)
	}
	levels[len(pairs)] = Z
	return
}
