package model_problems

import (
	"strings"

	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/model_problems/SW1LGlobal"
	"github.com/notargets/goswe/model_problems/SW1LLocal"
	"github.com/notargets/goswe/model_problems/SW2LLayerwise"
	"github.com/notargets/goswe/model_problems/SW2LLocal"
)

type ModelType uint8

const (
	SW1LGlobalModel ModelType = iota
	SW1LLocalModel
	SW2LLocalModel
	SW2LLayerwiseModel
)

var (
	ModelNames = map[string]ModelType{
		"sw1lglobal":    SW1LGlobalModel,
		"sw1llocal":     SW1LLocalModel,
		"sw2llocal":     SW2LLocalModel,
		"sw2llayerwise": SW2LLayerwiseModel,
	}
	modelLayers = map[ModelType]int{
		SW1LGlobalModel:    1,
		SW1LLocalModel:     1,
		SW2LLocalModel:     2,
		SW2LLayerwiseModel: 2,
	}
)

func ParseModelType(name string) (mt ModelType, err error) {
	var ok bool
	if mt, ok = ModelNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = &PCCU1D.ConfigurationError{
			Field:  "Model",
			Reason: "unknown model \"" + name + "\", use one of " + strings.Join(Names(), ", "),
		}
	}
	return
}

// Layers is 1 or 2
func (mt ModelType) Layers() int { return modelLayers[mt] }

// Names lists the registered models in their canonical spelling
func Names() []string {
	return []string{"SW1LGlobal", "SW1LLocal", "SW2LLayerwise", "SW2LLocal"}
}

// NewModel looks a model up by name, case-insensitively
func NewModel(name string, p PCCU1D.PhysicalParams) (m PCCU1D.Model, err error) {
	var mt ModelType
	if mt, err = ParseModelType(name); err != nil {
		return
	}
	switch mt {
	case SW1LGlobalModel:
		m, err = nilOnError(SW1LGlobal.NewSW1LGlobal(p))
	case SW1LLocalModel:
		m, err = nilOnError(SW1LLocal.NewSW1LLocal(p))
	case SW2LLocalModel:
		m, err = nilOnError(SW2LLocal.NewSW2LLocal(p))
	case SW2LLayerwiseModel:
		m, err = nilOnError(SW2LLayerwise.NewSW2LLayerwise(p))
	}
	return
}

// nilOnError keeps a typed nil pointer out of the returned interface
func nilOnError[T PCCU1D.Model](m T, err error) (PCCU1D.Model, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DefaultPhysicalParams returns g = 9.81 and the default density ratio for
// the number of layers of the named model
func DefaultPhysicalParams(name string) (p PCCU1D.PhysicalParams, err error) {
	var mt ModelType
	if mt, err = ParseModelType(name); err != nil {
		return
	}
	p = PCCU1D.DefaultPhysicalParams(mt.Layers())
	return
}
