package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		input string
		want  Step
	}{
		{"add:5", Step{OpAdd, "5"}},
		{"ADD : 5", Step{OpAdd, "5"}},
		{"+ 5", Step{OpAdd, "5"}},
		{"+5", Step{OpAdd, "5"}},
		{"-2.5", Step{OpSub, "2.5"}},
		{"sub -3", Step{OpSub, "-3"}},
		{"*2", Step{OpMultiply, "2"}},
		{"x 3", Step{OpMultiply, "3"}},
		{"/:4", Step{OpDivide, "4"}},
		{"pow 2", Step{OpPower, "2"}},
		{"^0.5", Step{OpPower, "0.5"}},
		{"%10", Step{OpPercentage, "10"}},
		{"sqrt", Step{Op: OpSqrt}},
		{" inverse ", Step{Op: OpInverse}},
		{"negclamp", Step{Op: OpClamp}},
		{"freeze", Step{Op: OpFreeze}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStep(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStepErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "modulo:3", "add", "add:", "+", "sqrt:4", "abs 1"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseStep(input)
			assert.Error(t, err)
		})
	}
}

func TestParseStepExponentBound(t *testing.T) {
	for _, input := range []string{"pow:1000000000000", "^-100001", "pow 1e9"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseStep(input)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange))
		})
	}

	step, err := ParseStep("pow:100000")
	require.NoError(t, err)
	assert.Equal(t, Step{OpPower, "100000"}, step)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "add:5", Step{OpAdd, "5"}.String())
	assert.Equal(t, "sqrt", Step{Op: OpSqrt}.String())

	for _, op := range Ops() {
		step := Step{Op: op}
		if ops[op].binary {
			step.Arg = "1"
		}
		parsed, err := ParseStep(step.String())
		require.NoError(t, err)
		assert.Equal(t, step, parsed)
	}
}

func TestApply(t *testing.T) {
	steps, err := ParseSteps([]string{"add:5", "* 2", "sub 1", "pct:50", "sqrt"})
	require.NoError(t, err)

	acc := calc.MustInit("10")
	require.NoError(t, Apply(acc, steps))

	r, err := acc.Result(4, false)
	require.NoError(t, err)
	assert.Equal(t, "3.8079", r)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	steps, err := ParseSteps([]string{"div:0", "add:1"})
	require.NoError(t, err)

	acc := calc.MustInit("7")
	err = Apply(acc, steps)
	assert.ErrorIs(t, err, calc.ErrDivisionByZero)
	assert.Equal(t, "7", acc.RawValue())
}

func TestApplyFreeze(t *testing.T) {
	steps, err := ParseSteps([]string{"abs", "freeze", "inv"})
	require.NoError(t, err)

	acc := calc.MustInit("-4")
	err = Apply(acc, steps)
	assert.ErrorIs(t, err, calc.ErrFrozen)
	assert.True(t, acc.IsFrozen())
	assert.Equal(t, "4", acc.RawValue())
}

func TestParseStepsError(t *testing.T) {
	steps, err := ParseSteps([]string{"add:1", "bogus"})
	assert.Error(t, err)
	assert.Nil(t, steps)
}
