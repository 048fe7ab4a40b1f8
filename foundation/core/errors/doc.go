// Package errors provides the module-scoped error constructors used by the
// calculator packages.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Builds *error.Error values with a module, an operation, a code
//              and details through a fluent builder, and offers one constructor
//              per failure kind of the calculator so that every package reports
//              the same shape of error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-17 v0.2.0: Calculator and configuration constructors
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleCalc).
//		Operation("divide").
//		Message("division by zero").
//		Code(mdwerror.CodeCalcDivisionByZero).
//		Detail("divisor", "0").
//		Build()
//
//	err = errors.DivisionByZero("divide", "0")
//
//	errors.ExtractModule(err)    // "calc"
//	errors.ExtractOperation(err) // "divide"
package errors
