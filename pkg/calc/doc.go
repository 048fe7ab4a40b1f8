// ============================================================================
// hyperf-saas-helper - Precision Calculator
// ============================================================================
//
// Package:     calc
// Description: Fluent arbitrary-precision calculator
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package calc implements a chainable decimal calculator.
//
// An Accumulator holds a value as a canonical decimal string and is mutated
// in place by chained calls. Arithmetic runs on the high precision backend of
// the Calculator that created it and falls back to float64 when high
// precision is disabled or no backend is configured. Output is rounded on the
// digit string, so results are identical on every platform.
//
//	total, err := calc.MustInit("19.99").
//		Multiply(3).
//		Percentage(119).
//		Result(2, false) // "71.36"
//
// Chained methods record the first failure and turn every later mutation
// into a no-op. Err reports it and Result returns it:
//
//	_, err := calc.MustInit(10).Divide(0).Add(1).Result(2, false)
//	errors.Is(err, calc.ErrDivisionByZero) // true
//
// Accumulators are not safe for concurrent mutation. Calculator values are
// immutable and may be shared.
package calc
