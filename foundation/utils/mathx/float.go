// File: float.go
// Title: Native Float Backend
// Description: Backend on float64, used when high precision is disabled or no
//              high precision backend is configured. Results are rounded to
//              the working scale with gonum so that binary noise such as
//              0.30000000000000004 does not leak into the decimal string.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

// FloatBackend is the native fallback.
type FloatBackend struct{}

// NewFloatBackend creates the float64 backend.
func NewFloatBackend() FloatBackend {
	return FloatBackend{}
}

// Name implements Backend.
func (FloatBackend) Name() string { return BackendFloat }

// Add implements Backend.
func (f FloatBackend) Add(a, b string, scale int) (string, error) {
	return f.apply("add", a, b, scale, func(x, y float64) float64 { return x + y })
}

// Sub implements Backend.
func (f FloatBackend) Sub(a, b string, scale int) (string, error) {
	return f.apply("sub", a, b, scale, func(x, y float64) float64 { return x - y })
}

// Mul implements Backend.
func (f FloatBackend) Mul(a, b string, scale int) (string, error) {
	return f.apply("mul", a, b, scale, func(x, y float64) float64 { return x * y })
}

// Div implements Backend.
func (f FloatBackend) Div(a, b string, scale int) (string, error) {
	if IsZero(b) {
		return "", errors.DivisionByZero(errors.ModuleMathx, "div", a)
	}
	return f.apply("div", a, b, scale, func(x, y float64) float64 { return x / y })
}

// Cmp implements Backend.
func (FloatBackend) Cmp(a, b string, scale int) int {
	x, errX := strconv.ParseFloat(a, 64)
	y, errY := strconv.ParseFloat(b, 64)
	if errX != nil || errY != nil {
		return CompareAt(a, b, scale)
	}
	x, y = scalar.Round(x, scale), scalar.Round(y, scale)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (FloatBackend) apply(op, a, b string, scale int, fn func(x, y float64) float64) (string, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return "", errors.Overflow(BackendFloat, op, err)
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return "", errors.Overflow(BackendFloat, op, err)
	}
	r := fn(x, y)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return "", errors.Overflow(BackendFloat, op, strconv.ErrRange)
	}
	return FromFloat(scalar.Round(r, scale))
}

// FloatResult converts the result of a native math function to a canonical
// string rounded to scale digits.
func FloatResult(op string, r float64, scale int) (string, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return "", errors.InvalidInput(errors.ModuleMathx, op, r, "finite result")
	}
	return FromFloat(scalar.Round(r, scale))
}

// ToFloat parses a canonical string as float64.
func ToFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.InvalidInput(errors.ModuleMathx, "to_float", s, "float64 range")
	}
	return f, nil
}
