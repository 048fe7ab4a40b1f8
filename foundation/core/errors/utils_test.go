// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the calculator constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17

package errors

import (
	"errors"
	"testing"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected qualified operation, got %q", err.Operation())
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").Operation("test_op").Cause(cause).Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()
		if err.Error() != "testmodule.test_op failed" {
			t.Errorf("Expected auto message, got %q", err.Error())
		}
		if err.Code() != mdwerror.CodeUnknown {
			t.Errorf("Expected unknown code, got %v", err.Code())
		}
	})

	t.Run("severity derived from code", func(t *testing.T) {
		err := NewErrorBuilder(ModuleCalc).Code(mdwerror.CodeCalcDivisionByZero).Build()
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})
}

func TestCalculatorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *mdwerror.Error
		code mdwerror.Code
		op   string
	}{
		{"invalid input", CalcInvalidInput("init", "abc", nil), mdwerror.CodeCalcInvalidInput, "init"},
		{"frozen", FrozenState("add"), mdwerror.CodeCalcFrozenState, "add"},
		{"division by zero", DivisionByZero(ModuleCalc, "divide", "10"), mdwerror.CodeCalcDivisionByZero, "divide"},
		{"zero inverse", ZeroHasNoInverse("inverse"), mdwerror.CodeCalcZeroHasNoInverse, "inverse"},
		{"negative radicand", NegativeRadicand("sqrt", "-4"), mdwerror.CodeCalcNegativeRadicand, "sqrt"},
		{"invalid precision", InvalidPrecision("result", -1), mdwerror.CodeCalcInvalidPrecision, "result"},
		{"overflow", Overflow("compact", "mul", errors.New("boom")), mdwerror.CodeCalcOverflow, "mul"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if got := ExtractOperation(tt.err); got != tt.op {
				t.Errorf("ExtractOperation() = %q, want %q", got, tt.op)
			}
		})
	}

	if FrozenState("add").Error() != "result already frozen, cannot modify" {
		t.Errorf("unexpected frozen message %q", FrozenState("add").Error())
	}
	if !errors.Is(ZeroHasNoInverse("inverse"), mdwerror.Sentinel(mdwerror.CodeCalcDivisionByZero)) {
		t.Error("zero inverse should be a division by zero")
	}
}

func TestExtractHelpersOnPlainErrors(t *testing.T) {
	plain := errors.New("plain")
	if ExtractModule(plain) != "" || ExtractOperation(plain) != "" {
		t.Error("plain errors carry no module or operation")
	}
	if !IsModuleOperation(InvalidInput(ModuleConfig, "load", "x", "y"), ModuleConfig, "load") {
		t.Error("IsModuleOperation() should match")
	}
}
