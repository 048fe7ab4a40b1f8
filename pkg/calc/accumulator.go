package calc

import (
	"math"
	"strconv"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
)

// Accumulator is a mutable decimal value with chainable operations.
//
// The zero value holds "0" under DefaultConfig. Use Calculator.Init to
// start from another value or configuration.
type Accumulator struct {
	value  string
	frozen bool
	err    error
	cfg    Config
}

func (a *Accumulator) ensure() {
	if a.value == "" {
		a.value = mathx.Zero
		a.cfg = DefaultConfig()
	}
}

// Config returns the configuration captured when a was created.
func (a *Accumulator) Config() Config {
	a.ensure()
	return a.cfg
}

// Err returns the first error recorded by a chained operation.
func (a *Accumulator) Err() error {
	return a.err
}

// ResetErr returns the recorded error and clears it. The value is the one
// held before the failing operation.
func (a *Accumulator) ResetErr() error {
	err := a.err
	a.err = nil
	return err
}

// Freeze makes a immutable. Every later mutation fails with ErrFrozen.
func (a *Accumulator) Freeze() *Accumulator {
	a.frozen = true
	return a
}

// IsFrozen reports whether a was frozen.
func (a *Accumulator) IsFrozen() bool {
	return a.frozen
}

// Clone returns a mutable copy of the value and configuration of a without
// its recorded error.
func (a *Accumulator) Clone() *Accumulator {
	a.ensure()
	return &Accumulator{value: a.value, cfg: a.cfg}
}

// mutable reports whether op may change a and records ErrFrozen otherwise.
func (a *Accumulator) mutable(op string) bool {
	a.ensure()
	if a.err != nil {
		return false
	}
	if a.frozen {
		a.err = errors.FrozenState(op)
		return false
	}
	return true
}

func (a *Accumulator) fail(err error) *Accumulator {
	a.err = err
	return a
}

func (a *Accumulator) set(value string, err error) *Accumulator {
	if err != nil {
		return a.fail(err)
	}
	a.value = value
	return a
}

func (a *Accumulator) binary(op string, n any, fn func(x, y string, scale int) (string, error)) *Accumulator {
	if !a.mutable(op) {
		return a
	}
	operand, err := parseOperand(op, n)
	if err != nil {
		return a.fail(err)
	}
	return a.set(fn(a.value, operand, a.cfg.Scale))
}

// Add adds n.
func (a *Accumulator) Add(n any) *Accumulator {
	return a.binary("add", n, a.Config().Arithmetic().Add)
}

// Sub subtracts n.
func (a *Accumulator) Sub(n any) *Accumulator {
	return a.binary("sub", n, a.Config().Arithmetic().Sub)
}

// Multiply multiplies by n.
func (a *Accumulator) Multiply(n any) *Accumulator {
	return a.binary("multiply", n, a.Config().Arithmetic().Mul)
}

// Divide divides by n. A zero divisor fails with ErrDivisionByZero and
// leaves the value unchanged.
func (a *Accumulator) Divide(n any) *Accumulator {
	if !a.mutable("divide") {
		return a
	}
	divisor, err := parseOperand("divide", n)
	if err != nil {
		return a.fail(err)
	}
	if mathx.IsZero(divisor) {
		return a.fail(errors.DivisionByZero(errors.ModuleCalc, "divide", a.value))
	}
	return a.set(a.cfg.Arithmetic().Div(a.value, divisor, a.cfg.Scale))
}

// NegativeClamp replaces a negative value with zero. The comparison is made
// at the working scale.
func (a *Accumulator) NegativeClamp() *Accumulator {
	if !a.mutable("negative_clamp") {
		return a
	}
	if a.cfg.Arithmetic().Cmp(a.value, mathx.Zero, a.cfg.Scale) < 0 {
		a.value = mathx.Zero
	}
	return a
}

// Abs drops the sign.
func (a *Accumulator) Abs() *Accumulator {
	if !a.mutable("abs") {
		return a
	}
	a.value = mathx.Abs(a.value)
	return a
}

// Power raises the value to exp. Integer exponents on the high precision
// backend use repeated multiplication, negative ones take the reciprocal.
// The cost is linear in |exp|: one backend multiplication per unit, so
// callers taking untrusted exponents should bound them first.
// Fractional exponents and the native backend use math.Pow.
func (a *Accumulator) Power(exp any) *Accumulator {
	if !a.mutable("power") {
		return a
	}
	e, err := parseOperand("power", exp)
	if err != nil {
		return a.fail(err)
	}
	if mathx.IsZero(a.value) && mathx.Sign(e) < 0 {
		return a.fail(errors.DivisionByZero(errors.ModuleCalc, "power", mathx.One))
	}
	if !a.cfg.Precise() || !mathx.IsInteger(e) {
		return a.native("power", func(x float64) (float64, error) {
			y, err := mathx.ToFloat(e)
			return math.Pow(x, y), err
		})
	}

	remaining, err := strconv.ParseInt(mathx.Abs(e), 10, 64)
	if err != nil {
		return a.fail(errors.CalcInvalidInput("power", exp, err))
	}
	backend, scale := a.cfg.Backend, a.cfg.Scale
	result := mathx.One
	for ; remaining > 0; remaining-- {
		if result, err = backend.Mul(result, a.value, scale); err != nil {
			return a.fail(err)
		}
	}
	if mathx.Sign(e) < 0 {
		if mathx.IsZero(result) {
			return a.fail(errors.DivisionByZero(errors.ModuleCalc, "power", mathx.One))
		}
		result, err = backend.Div(mathx.One, result, scale)
	}
	return a.set(result, err)
}

// Sqrt replaces the value with its square root. High precision uses Newton's
// method starting at value/2 and stops when two successive guesses are equal
// at the working scale, or after MaxSqrtIterations steps.
func (a *Accumulator) Sqrt() *Accumulator {
	if !a.mutable("sqrt") {
		return a
	}
	backend, scale := a.cfg.Arithmetic(), a.cfg.Scale
	if backend.Cmp(a.value, mathx.Zero, scale) < 0 {
		return a.fail(errors.NegativeRadicand("sqrt", a.value))
	}
	if mathx.Sign(a.value) <= 0 {
		a.value = mathx.Zero
		return a
	}
	if !a.cfg.Precise() {
		return a.native("sqrt", func(x float64) (float64, error) { return math.Sqrt(x), nil })
	}

	guess, err := backend.Div(a.value, "2", scale)
	if err != nil {
		return a.fail(err)
	}
	if mathx.IsZero(guess) {
		guess = a.value
	}
	for i := 0; i < MaxSqrtIterations; i++ {
		next, err := newtonStep(backend, a.value, guess, scale)
		if err != nil {
			return a.fail(err)
		}
		if backend.Cmp(next, guess, scale) == 0 {
			break
		}
		guess = next
	}
	a.value = guess
	return a
}

// newtonStep returns (guess + x/guess) / 2.
func newtonStep(b mathx.Backend, x, guess string, scale int) (string, error) {
	q, err := b.Div(x, guess, scale)
	if err != nil {
		return "", err
	}
	s, err := b.Add(guess, q, scale)
	if err != nil {
		return "", err
	}
	return b.Div(s, "2", scale)
}

// Percentage multiplies the value by p/100.
func (a *Accumulator) Percentage(p any) *Accumulator {
	if !a.mutable("percentage") {
		return a
	}
	pct, err := parseOperand("percentage", p)
	if err != nil {
		return a.fail(err)
	}
	backend, scale := a.cfg.Arithmetic(), a.cfg.Scale
	factor, err := backend.Div(pct, "100", scale)
	if err != nil {
		return a.fail(err)
	}
	return a.set(backend.Mul(a.value, factor, scale))
}

// Inverse replaces the value with 1/value. Zero fails with
// ErrZeroHasNoInverse, which also matches ErrDivisionByZero.
func (a *Accumulator) Inverse() *Accumulator {
	if !a.mutable("inverse") {
		return a
	}
	if mathx.IsZero(a.value) {
		return a.fail(errors.ZeroHasNoInverse("inverse"))
	}
	return a.set(a.cfg.Arithmetic().Div(mathx.One, a.value, a.cfg.Scale))
}

// native applies fn to the float64 value and stores the rounded result.
func (a *Accumulator) native(op string, fn func(float64) (float64, error)) *Accumulator {
	x, err := mathx.ToFloat(a.value)
	if err != nil {
		return a.fail(errors.CalcInvalidInput(op, a.value, err))
	}
	r, err := fn(x)
	if err != nil {
		return a.fail(errors.CalcInvalidInput(op, a.value, err))
	}
	value, err := mathx.FloatResult(op, r, a.cfg.Scale)
	if err != nil {
		return a.fail(errors.CalcInvalidInput(op, a.value, err))
	}
	a.value = value
	return a
}
