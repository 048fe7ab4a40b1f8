// Package chain parses and applies calculator steps such as "add:5", "* 2"
// or "sqrt". It backs the eval command and the interactive REPL.
package chain

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

// Op names a step operation.
type Op string

// Supported operations.
const (
	OpAdd        Op = "add"
	OpSub        Op = "sub"
	OpMultiply   Op = "mul"
	OpDivide     Op = "div"
	OpPower      Op = "pow"
	OpSqrt       Op = "sqrt"
	OpPercentage Op = "pct"
	OpInverse    Op = "inv"
	OpAbs        Op = "abs"
	OpClamp      Op = "clamp"
	OpFreeze     Op = "freeze"
)

type opDef struct {
	binary bool
	unary  func(*calc.Accumulator) *calc.Accumulator
	apply  func(*calc.Accumulator, any) *calc.Accumulator
}

var ops = map[Op]opDef{
	OpAdd:        {binary: true, apply: (*calc.Accumulator).Add},
	OpSub:        {binary: true, apply: (*calc.Accumulator).Sub},
	OpMultiply:   {binary: true, apply: (*calc.Accumulator).Multiply},
	OpDivide:     {binary: true, apply: (*calc.Accumulator).Divide},
	OpPower:      {binary: true, apply: (*calc.Accumulator).Power},
	OpPercentage: {binary: true, apply: (*calc.Accumulator).Percentage},
	OpSqrt:       {unary: (*calc.Accumulator).Sqrt},
	OpInverse:    {unary: (*calc.Accumulator).Inverse},
	OpAbs:        {unary: (*calc.Accumulator).Abs},
	OpClamp:      {unary: (*calc.Accumulator).NegativeClamp},
	OpFreeze:     {unary: (*calc.Accumulator).Freeze},
}

var aliases = map[string]Op{
	"+":           OpAdd,
	"-":           OpSub,
	"*":           OpMultiply,
	"x":           OpMultiply,
	"multiply":    OpMultiply,
	"/":           OpDivide,
	"divide":      OpDivide,
	"^":           OpPower,
	"power":       OpPower,
	"%":           OpPercentage,
	"percent":     OpPercentage,
	"percentage":  OpPercentage,
	"inverse":     OpInverse,
	"negclamp":    OpClamp,
	"subtract":    OpSub,
	"square_root": OpSqrt,
}

// MaxExponent bounds the magnitude of a pow operand. Integer powers cost one
// multiplication per unit of the exponent.
const MaxExponent = 100000

// symbols may be written directly in front of their operand, as in "*2".
const symbols = "+-*/^%"

// Step is one parsed operation. Arg is empty for unary operations.
type Step struct {
	Op  Op
	Arg string
}

// String renders the step in the "op:arg" form accepted by ParseStep.
func (s Step) String() string {
	if s.Arg == "" {
		return string(s.Op)
	}
	return string(s.Op) + ":" + s.Arg
}

// Apply runs the step on acc and returns acc for chaining.
func (s Step) Apply(acc *calc.Accumulator) *calc.Accumulator {
	def, ok := ops[s.Op]
	if !ok {
		return acc
	}
	if def.binary {
		return def.apply(acc, s.Arg)
	}
	return def.unary(acc)
}

// Ops lists the canonical operation names.
func Ops() []Op {
	return []Op{OpAdd, OpSub, OpMultiply, OpDivide, OpPower, OpSqrt, OpPercentage, OpInverse, OpAbs, OpClamp, OpFreeze}
}

// ParseStep parses "op:arg", "op arg", "op" or a symbol with an attached
// operand such as "+5". Names are case-insensitive.
func ParseStep(text string) (Step, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Step{}, errors.InvalidFormat(errors.ModuleChain, text, "op[:arg]")
	}

	name, arg := splitStep(text)
	op, ok := lookup(name)
	if !ok {
		return Step{}, errors.InvalidInput(errors.ModuleChain, "parse_step", name, "known operation")
	}

	def := ops[op]
	switch {
	case def.binary && arg == "":
		return Step{}, errors.NewErrorBuilder(errors.ModuleChain).
			Operation("parse_step").
			Messagef("%s needs an operand", op).
			Code(mdwerror.CodeInvalidFormat).
			Detail("input", text).
			Build()
	case !def.binary && arg != "":
		return Step{}, errors.NewErrorBuilder(errors.ModuleChain).
			Operation("parse_step").
			Messagef("%s takes no operand", op).
			Code(mdwerror.CodeInvalidFormat).
			Detail("input", text).
			Build()
	case op == OpPower:
		if exp, err := strconv.ParseFloat(arg, 64); err == nil && math.Abs(exp) > MaxExponent {
			return Step{}, errors.OutOfRange(errors.ModuleChain, "parse_step", arg, -MaxExponent, MaxExponent)
		}
	}
	return Step{Op: op, Arg: arg}, nil
}

// ParseSteps parses every entry of texts and stops at the first error.
func ParseSteps(texts []string) ([]Step, error) {
	steps := make([]Step, 0, len(texts))
	for _, text := range texts {
		step, err := ParseStep(text)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Apply runs steps on acc in order and returns the first recorded error.
// Steps after a failure are skipped by the accumulator.
func Apply(acc *calc.Accumulator, steps []Step) error {
	for _, step := range steps {
		step.Apply(acc)
	}
	return acc.Err()
}

func splitStep(text string) (string, string) {
	if i := strings.IndexByte(text, ':'); i >= 0 {
		return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
	}
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		return text[:i], strings.TrimSpace(text[i:])
	}
	if len(text) > 1 && strings.IndexByte(symbols, text[0]) >= 0 {
		return text[:1], text[1:]
	}
	return text, ""
}

func lookup(name string) (Op, bool) {
	name = strings.ToLower(name)
	if _, ok := ops[Op(name)]; ok {
		return Op(name), true
	}
	op, ok := aliases[name]
	return op, ok
}
