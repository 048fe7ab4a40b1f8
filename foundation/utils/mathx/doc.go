// Package mathx provides decimal string arithmetic for the precision calculator.
//
// Package: mathx
// Title: Decimal String Arithmetic
// Description: Values travel between packages as canonical decimal strings
//              ("-12.5", "0.001", "1024"). This package parses and normalizes
//              such strings, performs arithmetic on them through pluggable
//              backends that truncate at a working scale, rounds them on the
//              digit string, and formats them for display.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with Decimal, Money and business helpers
// - 2026-10-17 v0.2.0: Canonical decimal strings, arithmetic backends, string rounding
//
// Canonical form:
//
// A canonical decimal string has an optional leading "-", at least one integer
// digit without redundant leading zeros, and an optional fraction without
// trailing zeros. Zero is always "0", never "-0". Exponent notation is expanded.
//
// Backends:
//
//   - BigBackend: unbounded precision on math/big integers
//   - CompactBackend: 19 digit decimals from github.com/govalues/decimal
//   - FloatBackend: float64 arithmetic, rounded to the working scale with gonum
//
// All backends truncate results toward zero at the requested scale.
//
// Usage:
//
//	b := mathx.NewBigBackend()
//	q, err := b.Div("1", "3", 10) // "0.3333333333"
//	r := mathx.Round(q, 2, mathx.RoundingModeHalfUp) // "0.33"
package mathx
