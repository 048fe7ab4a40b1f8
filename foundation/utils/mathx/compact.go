// File: compact.go
// Title: Compact Decimal Backend
// Description: Backend on github.com/govalues/decimal. Values are limited to
//              19 significant digits; anything larger is reported as overflow
//              instead of silently losing precision.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mathx

import (
	"github.com/govalues/decimal"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

// CompactBackend trades range for speed: no heap allocation per operation.
type CompactBackend struct{}

// NewCompactBackend creates the govalues/decimal backend.
func NewCompactBackend() CompactBackend {
	return CompactBackend{}
}

// Name implements Backend.
func (CompactBackend) Name() string { return BackendCompact }

// Add implements Backend.
func (c CompactBackend) Add(a, b string, scale int) (string, error) {
	return c.apply("add", a, b, scale, decimal.Decimal.Add)
}

// Sub implements Backend.
func (c CompactBackend) Sub(a, b string, scale int) (string, error) {
	return c.apply("sub", a, b, scale, decimal.Decimal.Sub)
}

// Mul implements Backend.
func (c CompactBackend) Mul(a, b string, scale int) (string, error) {
	return c.apply("mul", a, b, scale, decimal.Decimal.Mul)
}

// Div implements Backend. The quotient is computed to the full 19 digits of
// the type and then truncated to scale.
func (c CompactBackend) Div(a, b string, scale int) (string, error) {
	if IsZero(b) {
		return "", errors.DivisionByZero(errors.ModuleMathx, "div", a)
	}
	return c.apply("div", a, b, scale, decimal.Decimal.Quo)
}

// Cmp implements Backend.
func (CompactBackend) Cmp(a, b string, scale int) int {
	return CompareAt(a, b, scale)
}

func (CompactBackend) apply(op, a, b string, scale int, fn func(decimal.Decimal, decimal.Decimal) (decimal.Decimal, error)) (string, error) {
	x, err := decimal.Parse(a)
	if err != nil {
		return "", errors.Overflow(BackendCompact, op, err)
	}
	y, err := decimal.Parse(b)
	if err != nil {
		return "", errors.Overflow(BackendCompact, op, err)
	}
	d, err := fn(x, y)
	if err != nil {
		return "", errors.Overflow(BackendCompact, op, err)
	}
	if d.Scale() > scale {
		d = d.Trunc(scale)
	}
	return Normalize(d.String())
}
