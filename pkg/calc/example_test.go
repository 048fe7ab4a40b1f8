package calc_test

import (
	"errors"
	"fmt"

	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

func ExampleAccumulator_Result() {
	total, _ := calc.MustInit("19.99").
		Multiply(3).
		Percentage(119).
		Result(2, false)
	fmt.Println(total)
	// Output: 71.36
}

func ExampleAccumulator_ToCurrency() {
	s, _ := calc.MustInit(-1234.5).ToCurrency(".", ",")
	fmt.Println(s)
	// Output: -1,234.50
}

func ExampleAccumulator_Err() {
	acc := calc.MustInit(10).Divide(0).Add(1)
	fmt.Println(acc.RawValue(), errors.Is(acc.Err(), calc.ErrDivisionByZero))
	// Output: 10 true
}

func ExampleCalculator_WithHighPrecision() {
	c, _ := calc.Default().WithHighPrecision(true, 4)
	fmt.Println(c.MustInit(2).Divide(3).RawValue())
	// Output: 0.6666
}
