// Package error provides the structured error type used across the calculator.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type carrying a machine readable code, a
//              severity, the failing operation, free-form details and a stack
//              trace. Codes form a small hierarchy so that errors.Is can match
//              a specific failure against its more general kind.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Calculator codes, code hierarchy, errors.Is support, sentinels
//
// Usage:
//
//	err := error.New("division by zero").
//		WithCode(error.CodeDivisionByZero).
//		WithOperation("calc.divide").
//		WithDetail("divisor", "0")
//
//	if errors.Is(err, error.Sentinel(error.CodeDivisionByZero)) {
//		// handle division by zero
//	}
package error
