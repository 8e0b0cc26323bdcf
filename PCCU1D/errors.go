package PCCU1D

import (
	"errors"
	"fmt"
)

// Stages reported by NumericalBreakdownError
const (
	StageReconstruction = "reconstruction"
	StageIntegration    = "integration"
)

// ErrTerminal is returned by Step once a run has reached tmax
var ErrTerminal = errors.New("solver has reached its final time")

// NumericalBreakdownError reports a non-positive or non-finite value where
// the scheme needs a positive depth or a finite state. Cell is a column of W
// for the integration stage and an interface index for reconstruction.
type NumericalBreakdownError struct {
	Step     int
	Cell     int
	Variable string
	Value    float64
	Stage    string
}

func (e *NumericalBreakdownError) Error() string {
	return fmt.Sprintf("numerical breakdown at step %d during %s: %s = %g at index %d",
		e.Step, e.Stage, e.Variable, e.Value, e.Cell)
}

// DegenerateSpeedPairError reports that every interface has ap = am = 0, so
// no finite time step exists.
type DegenerateSpeedPairError struct {
	Step int
	Time float64
}

func (e *DegenerateSpeedPairError) Error() string {
	return fmt.Sprintf("degenerate wave speeds at step %d, t = %g: all interface speeds are zero",
		e.Step, e.Time)
}

// ConfigurationError reports an invalid construction argument
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...interface{}) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
