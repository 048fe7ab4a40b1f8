// File: number_test.go
// Title: Canonical Decimal String Tests
// Description: Tests for normalization, conversion and comparison of decimal strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package mathx

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123.45", "123.45"},
		{"-0", "0"},
		{"-0.000", "0"},
		{"+1.50", "1.5"},
		{"007", "7"},
		{".5", "0.5"},
		{"5.", "5"},
		{"1e3", "1000"},
		{"1.5E-3", "0.0015"},
		{"-2.5e1", "-25"},
		{"1.23e1", "12.3"},
		{" 42 ", "42"},
		{"-000.0100", "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "-", ".", "1e", "NaN", "Inf", "1,5", "1e99999", "--1", "0x10"} {
		t.Run(input, func(t *testing.T) {
			if got, err := Normalize(input); err == nil {
				t.Errorf("Normalize(%q) = %q, want error", input, got)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 42, "42"},
		{"int8", int8(-3), "-3"},
		{"uint64 max", uint64(math.MaxUint64), "18446744073709551615"},
		{"float64", 0.1, "0.1"},
		{"float64 large", 1e21, "1000000000000000000000"},
		{"float64 small", 1e-7, "0.0000001"},
		{"float64 negative zero", math.Copysign(0, -1), "0"},
		{"float32", float32(0.1), "0.1"},
		{"json number", json.Number("1.50"), "1.5"},
		{"big int", big.NewInt(-7), "-7"},
		{"string", "1234.5678", "1234.5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.input)
			if err != nil {
				t.Fatalf("ToString(%v) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToStringRejectsInvalid(t *testing.T) {
	var nilInt *big.Int
	for name, input := range map[string]any{
		"nil":     nil,
		"bool":    true,
		"nan":     math.NaN(),
		"inf":     math.Inf(1),
		"slice":   []int{1},
		"nil big": nilInt,
	} {
		t.Run(name, func(t *testing.T) {
			if got, err := ToString(input); err == nil {
				t.Errorf("ToString(%v) = %q, want error", input, got)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"-1", "1", -1},
		{"10", "9", 1},
		{"0.1", "0.09", 1},
		{"-0.1", "-0.09", -1},
		{"2", "2", 0},
		{"0", "-0.5", 1},
		{"123.450001", "123.45", 1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareAtTruncates(t *testing.T) {
	if got := CompareAt("-0.000000000001", "0", 10); got != 0 {
		t.Errorf("CompareAt() = %d, want 0", got)
	}
	if got := CompareAt("1.23456", "1.23459", 4); got != 0 {
		t.Errorf("CompareAt() = %d, want 0", got)
	}
	if got := CompareAt("1.23456", "1.23459", 5); got != -1 {
		t.Errorf("CompareAt() = %d, want -1", got)
	}
}

func TestSignHelpers(t *testing.T) {
	if Sign("-3") != -1 || Sign("0") != 0 || Sign("0.1") != 1 {
		t.Error("Sign() mismatch")
	}
	if Abs("-3.5") != "3.5" || Neg("3.5") != "-3.5" || Neg("-3.5") != "3.5" || Neg("0") != "0" {
		t.Error("Abs()/Neg() mismatch")
	}
	if Scale("1.250") != 3 || Scale("7") != 0 {
		t.Error("Scale() mismatch")
	}
	if !IsInteger("-12") || IsInteger("1.5") {
		t.Error("IsInteger() mismatch")
	}
	if Truncate("-1.239", 2) != "-1.23" || Truncate("1.2", 5) != "1.2" || Truncate("0.009", 2) != "0" {
		t.Error("Truncate() mismatch")
	}
}
