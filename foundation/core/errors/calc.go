// File: calc.go
// Title: Calculator Error Constructors
// Description: One constructor per failure kind of the precision calculator
//              and its arithmetic backends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package errors

import (
	"fmt"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
)

// CalcInvalidInput reports a value that cannot be read as a finite decimal.
// cause may be nil.
func CalcInvalidInput(operation string, input interface{}, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleCalc).
		Operation(operation).
		Message("invalid numeric input").
		Cause(cause).
		Code(mdwerror.CodeCalcInvalidInput).
		Detail("input", fmt.Sprintf("%v", input)).
		Build()
}

// FrozenState reports a mutation attempt on a frozen accumulator.
func FrozenState(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCalc).
		Operation(operation).
		Message("result already frozen, cannot modify").
		Code(mdwerror.CodeCalcFrozenState).
		Build()
}

// DivisionByZero reports a zero divisor.
func DivisionByZero(module, operation string, dividend string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("division by zero").
		Code(mdwerror.CodeCalcDivisionByZero).
		Detail("dividend", dividend).
		Build()
}

// ZeroHasNoInverse reports the inverse of zero.
func ZeroHasNoInverse(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCalc).
		Operation(operation).
		Message("zero has no inverse").
		Code(mdwerror.CodeCalcZeroHasNoInverse).
		Build()
}

// NegativeRadicand reports the square root of a negative value.
func NegativeRadicand(operation, value string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCalc).
		Operation(operation).
		Message("cannot take square root of a negative number").
		Code(mdwerror.CodeCalcNegativeRadicand).
		Detail("value", value).
		Build()
}

// InvalidPrecision reports a negative rounding precision.
func InvalidPrecision(operation string, precision int) *mdwerror.Error {
	return NewErrorBuilder(ModuleCalc).
		Operation(operation).
		Message("precision must be zero or positive").
		Code(mdwerror.CodeCalcInvalidPrecision).
		Detail("precision", precision).
		Build()
}

// Overflow reports a result outside the capacity of a bounded backend.
func Overflow(backend, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Messagef("%s backend overflow", backend).
		Cause(cause).
		Code(mdwerror.CodeCalcOverflow).
		Detail("backend", backend).
		Build()
}

// InvalidConfig reports a configuration value that fails validation.
func InvalidConfig(field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration for %s: %s", field, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// ConfigNotFound reports a missing configuration file.
func ConfigNotFound(path string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("config file not found: %s", path).
		Code(mdwerror.CodeMissingConfig).
		Detail("path", path).
		Build()
}

// ConfigParse wraps a decoder failure for the given file and format.
func ConfigParse(path, format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("%s parse error in %s", format, path).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Detail("path", path).
		Detail("format", format).
		Build()
}
