// File: context.go
// Title: Evaluation Context
// Description: Defines the read-only parameter lookup an evaluation runs
//              against and the angle unit used by the trigonometric
//              functions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-16
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-16 v0.1.0: Initial implementation

package eval

import (
	"strings"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// Context resolves parameter references. Implementations must not be
// modified while an evaluation runs.
type Context interface {
	Lookup(param token.Parameter) (float64, bool)
}

// MapContext is a Context backed by a map
type MapContext map[token.Parameter]float64

// Lookup implements Context
func (m MapContext) Lookup(param token.Parameter) (float64, bool) {
	v, ok := m[param]
	return v, ok
}

// AngleUnit selects how SIN, COS, TAN take and ACOS, ASIN, ATAN return angles
type AngleUnit int

const (
	// Degrees is the NGC default
	Degrees AngleUnit = iota

	// Radians uses the math package convention
	Radians
)

// String returns the string representation of the unit
func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "unknown"
	}
}

// ParseAngleUnit parses "degrees", "deg", "radians" or "rad"
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "deg", "":
		return Degrees, nil
	case "radians", "rad":
		return Radians, nil
	}
	return Degrees, ngcerror.Newf("invalid angle unit %q", s).
		WithCode(ngcerror.CodeInvalidInput).
		WithOperation("eval.ParseAngleUnit").
		WithDetail("value", s)
}
