package utils

import (
	"strconv"
	"strings"
)

// BCType is the rule used to fill a ghost cell from the adjacent interior cells
type BCType uint8

const (
	BCNone         BCType = iota // Ghost cell left untouched
	BCSymmetry                   // Ghost = first interior cell
	BCAntiSymmetry               // Ghost = -first interior cell, a reflecting wall for flow rows
	BCDirichlet                  // Ghost = fixed value
	BCOpen                       // Ghost = linear extrapolation of the two nearest interior cells
)

func (bc BCType) String() string {
	switch bc {
	case BCNone:
		return "None"
	case BCSymmetry:
		return "Symmetry"
	case BCAntiSymmetry:
		return "AntiSymmetry"
	case BCDirichlet:
		return "Dirichlet"
	case BCOpen:
		return "Open"
	}
	return "Unknown"
}

// BCNameMap provides a mapping from common boundary condition names to BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"none":         BCNone,
	"symmetry":     BCSymmetry,
	"symmetric":    BCSymmetry,
	"neumann":      BCSymmetry,
	"antisymmetry": BCAntiSymmetry,
	"wall":         BCAntiSymmetry,
	"reflective":   BCAntiSymmetry,
	"dirichlet":    BCDirichlet,
	"fixed":        BCDirichlet,
	"open":         BCOpen,
	"extrapolate":  BCOpen,
	"outflow":      BCOpen,
}

// ParseBCName converts a boundary rule string to a BCType. A string that
// parses as a number is a Dirichlet value. ok is false for unknown names.
func ParseBCName(name string) (bc BCType, value float64, ok bool) {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bc, ok = BCNameMap[lowerName]; ok {
		return
	}
	var err error
	if value, err = strconv.ParseFloat(lowerName, 64); err == nil {
		return BCDirichlet, value, true
	}
	return BCNone, 0, false
}
