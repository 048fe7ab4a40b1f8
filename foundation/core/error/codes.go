// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              calculator core, its configuration layer and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Calculator codes and parent relation

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calculator
	CodeCalcInvalidInput     Code = "CALC_INVALID_INPUT"
	CodeCalcFrozenState      Code = "CALC_FROZEN_STATE"
	CodeCalcDivisionByZero   Code = "CALC_DIVISION_BY_ZERO"
	CodeCalcZeroHasNoInverse Code = "CALC_ZERO_HAS_NO_INVERSE"
	CodeCalcNegativeRadicand Code = "CALC_NEGATIVE_RADICAND"
	CodeCalcInvalidPrecision Code = "CALC_INVALID_PRECISION"
	CodeCalcOverflow         Code = "CALC_OVERFLOW"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeCalcInvalidInput, CodeCalcFrozenState, CodeCalcDivisionByZero, CodeCalcZeroHasNoInverse,
		CodeCalcNegativeRadicand, CodeCalcInvalidPrecision, CodeCalcOverflow,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Parent returns the more general code this code refines, or "" for roots.
// A zero without inverse is a division by zero; calculator input errors are
// input errors.
func (c Code) Parent() Code {
	switch c {
	case CodeCalcZeroHasNoInverse:
		return CodeCalcDivisionByZero
	case CodeCalcInvalidInput, CodeCalcInvalidPrecision, CodeInvalidFormat, CodeValueOutOfRange:
		return CodeInvalidInput
	case CodeMissingConfig, CodeInvalidConfig:
		return CodeConfigError
	default:
		return ""
	}
}

// Refines reports whether c equals target or descends from it.
func (c Code) Refines(target Code) bool {
	for cur := c; cur != ""; cur = cur.Parent() {
		if cur == target {
			return true
		}
	}
	return false
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeCalcInvalidInput, CodeCalcFrozenState, CodeCalcDivisionByZero, CodeCalcZeroHasNoInverse,
		CodeCalcNegativeRadicand, CodeCalcInvalidPrecision, CodeCalcOverflow:
		return "calculation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation", "calculation":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
