// File: backend_test.go
// Title: Arithmetic Backend Tests
// Description: Parity tests for the big, compact and float backends and
//              backend specific behaviour such as truncation and overflow.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package mathx

import (
	"errors"
	"testing"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
)

func allBackends() []Backend {
	return []Backend{NewBigBackend(), NewCompactBackend(), NewFloatBackend()}
}

func TestBackendParity(t *testing.T) {
	type op func(b Backend, x, y string, scale int) (string, error)
	add := func(b Backend, x, y string, s int) (string, error) { return b.Add(x, y, s) }
	sub := func(b Backend, x, y string, s int) (string, error) { return b.Sub(x, y, s) }
	mul := func(b Backend, x, y string, s int) (string, error) { return b.Mul(x, y, s) }
	div := func(b Backend, x, y string, s int) (string, error) { return b.Div(x, y, s) }

	tests := []struct {
		name string
		fn   op
		a, b string
		want string
	}{
		{"add", add, "1.1", "2.2", "3.3"},
		{"add negative", add, "-1.5", "0.5", "-1"},
		{"sub", sub, "5", "7.5", "-2.5"},
		{"mul", mul, "2.5", "4", "10"},
		{"mul fraction", mul, "0.5", "0.5", "0.25"},
		{"div repeating", div, "1", "3", "0.3333333333"},
		{"div exact", div, "10", "4", "2.5"},
		{"div negative", div, "-9", "3", "-3"},
	}

	for _, b := range allBackends() {
		for _, tt := range tests {
			t.Run(b.Name()+"/"+tt.name, func(t *testing.T) {
				got, err := tt.fn(b, tt.a, tt.b, 10)
				if err != nil {
					t.Fatalf("error = %v", err)
				}
				if got != tt.want {
					t.Errorf("%s(%q, %q) = %q, want %q", tt.name, tt.a, tt.b, got, tt.want)
				}
			})
		}
	}
}

func TestBackendDivisionByZero(t *testing.T) {
	for _, b := range allBackends() {
		t.Run(b.Name(), func(t *testing.T) {
			_, err := b.Div("1", "0", 10)
			if !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeCalcDivisionByZero)) {
				t.Errorf("Div() error = %v, want division by zero", err)
			}
		})
	}
}

func TestExactBackendsTruncate(t *testing.T) {
	for _, b := range []Backend{NewBigBackend(), NewCompactBackend()} {
		t.Run(b.Name(), func(t *testing.T) {
			if got, _ := b.Div("2", "3", 4); got != "0.6666" {
				t.Errorf("Div(2, 3, 4) = %q, want 0.6666", got)
			}
			if got, _ := b.Add("-1.239", "0", 2); got != "-1.23" {
				t.Errorf("Add(-1.239, 0, 2) = %q, want -1.23", got)
			}
			if got, _ := b.Mul("0.1", "0.1", 1); got != "0" {
				t.Errorf("Mul(0.1, 0.1, 1) = %q, want 0", got)
			}
		})
	}
}

func TestBigBackendUnbounded(t *testing.T) {
	b := NewBigBackend()

	got, err := b.Mul("123456789012345678901234567890", "10", 0)
	if err != nil || got != "1234567890123456789012345678900" {
		t.Errorf("Mul() = %q, %v", got, err)
	}

	got, err = b.Div("1", "7", 30)
	if err != nil || got != "0.142857142857142857142857142857" {
		t.Errorf("Div() = %q, %v", got, err)
	}

	if got, _ := b.Div("-7", "2", 0); got != "-3" {
		t.Errorf("Div(-7, 2, 0) = %q, want -3", got)
	}
}

func TestCompactBackendOverflow(t *testing.T) {
	_, err := NewCompactBackend().Mul("99999999999999999", "99999", 0)
	if !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeCalcOverflow)) {
		t.Errorf("Mul() error = %v, want overflow", err)
	}

	_, err = NewCompactBackend().Add("123456789012345678901234567890", "1", 0)
	if !errors.Is(err, mdwerror.Sentinel(mdwerror.CodeCalcOverflow)) {
		t.Errorf("Add() error = %v, want overflow", err)
	}
}

func TestFloatBackendRoundsToScale(t *testing.T) {
	b := NewFloatBackend()
	if got, _ := b.Add("0.1", "0.2", 10); got != "0.3" {
		t.Errorf("Add(0.1, 0.2) = %q, want 0.3", got)
	}
	if got, _ := b.Div("2", "3", 4); got != "0.6667" {
		t.Errorf("Div(2, 3, 4) = %q, want 0.6667", got)
	}
	if got := b.Cmp("0.1", "0.10000000001", 10); got != 0 {
		t.Errorf("Cmp() = %d, want 0", got)
	}
}

func TestBackendCmp(t *testing.T) {
	for _, b := range allBackends() {
		t.Run(b.Name(), func(t *testing.T) {
			if got := b.Cmp("1.00000000001", "1", 10); got != 0 {
				t.Errorf("Cmp() = %d, want 0", got)
			}
			if got := b.Cmp("2", "1", 10); got != 1 {
				t.Errorf("Cmp() = %d, want 1", got)
			}
			if got := b.Cmp("-2", "1", 10); got != -1 {
				t.Errorf("Cmp() = %d, want -1", got)
			}
		})
	}
}

func TestBackendByName(t *testing.T) {
	for _, name := range []string{"big", "COMPACT", " float "} {
		b, err := BackendByName(name)
		if err != nil {
			t.Fatalf("BackendByName(%q) error = %v", name, err)
		}
		if b.Name() == "" {
			t.Errorf("BackendByName(%q) returned unnamed backend", name)
		}
	}
	if _, err := BackendByName("abacus"); err == nil {
		t.Error("BackendByName(abacus) should fail")
	}
	if names := BackendNames(); len(names) != 3 || names[0] != BackendBig {
		t.Errorf("BackendNames() = %v", names)
	}
}
