// File: example_test.go
// Title: MathX Examples
// Description: Usage examples for backends, rounding and formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package mathx_test

import (
	"fmt"

	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
)

func ExampleBigBackend_Div() {
	b := mathx.NewBigBackend()
	q, _ := b.Div("1", "3", 10)
	fmt.Println(q)
	// Output: 0.3333333333
}

func ExampleRound() {
	fmt.Println(mathx.Round("1234.5678", 2, mathx.RoundingModeHalfUp))
	fmt.Println(mathx.Round("1234.561", 2, mathx.RoundingModeUp))
	// Output:
	// 1234.57
	// 1234.57
}

func ExampleFormatNumber() {
	fmt.Println(mathx.FormatNumber("-1234.5", 2, ".", ","))
	// Output: -1,234.50
}
