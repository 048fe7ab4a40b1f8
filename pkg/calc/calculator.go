package calc

import (
	"reflect"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
)

// Calculator creates accumulators sharing one configuration.
type Calculator struct {
	cfg Config
}

var defaultCalculator = &Calculator{cfg: DefaultConfig()}

// New validates cfg and returns a calculator using it.
func New(cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{cfg: cfg}, nil
}

// Default returns the calculator over DefaultConfig.
func Default() *Calculator {
	return defaultCalculator
}

// Config returns the configuration of c.
func (c *Calculator) Config() Config {
	return c.cfg
}

// WithHighPrecision returns a calculator with high precision switched on or
// off. An omitted scale means DefaultScale. Accumulators created earlier keep
// their own configuration.
func (c *Calculator) WithHighPrecision(enabled bool, scale ...int) (*Calculator, error) {
	cfg := c.cfg
	cfg.HighPrecision = enabled
	cfg.Scale = DefaultScale
	if len(scale) > 0 {
		cfg.Scale = scale[0]
	}
	if enabled && cfg.Backend == nil {
		cfg.Backend = mathx.NewBigBackend()
	}
	return New(cfg)
}

// WithBackend returns a calculator whose high precision backend is b.
func (c *Calculator) WithBackend(b mathx.Backend) *Calculator {
	cfg := c.cfg
	cfg.Backend = b
	return &Calculator{cfg: cfg}
}

// WithFallback returns a calculator whose native backend is b.
func (c *Calculator) WithFallback(b mathx.Backend) *Calculator {
	cfg := c.cfg
	cfg.Fallback = b
	return &Calculator{cfg: cfg}
}

// Init creates a mutable accumulator holding v. Accepted are decimal
// strings, integer and float kinds, json.Number, fmt.Stringer and
// *Accumulator.
func (c *Calculator) Init(v any) (*Accumulator, error) {
	value, err := parseOperand("init", v)
	if err != nil {
		return nil, err
	}
	return &Accumulator{value: value, cfg: c.cfg}, nil
}

// MustInit is like Init but panics on invalid input.
func (c *Calculator) MustInit(v any) *Accumulator {
	acc, err := c.Init(v)
	if err != nil {
		panic(err)
	}
	return acc
}

// Sum folds values with addition starting from zero. An empty input yields "0".
func (c *Calculator) Sum(values ...any) (*Accumulator, error) {
	acc := &Accumulator{value: mathx.Zero, cfg: c.cfg}
	backend := c.cfg.Arithmetic()
	for _, v := range values {
		operand, err := parseOperand("sum", v)
		if err != nil {
			return nil, err
		}
		if acc.value, err = backend.Add(acc.value, operand, c.cfg.Scale); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Init creates an accumulator on the default calculator.
func Init(v any) (*Accumulator, error) {
	return defaultCalculator.Init(v)
}

// MustInit creates an accumulator on the default calculator and panics on
// invalid input. Intended for literals.
func MustInit(v any) *Accumulator {
	return defaultCalculator.MustInit(v)
}

// Sum adds values on the default calculator.
func Sum(values ...any) (*Accumulator, error) {
	return defaultCalculator.Sum(values...)
}

// Number lists the element types accepted by Values.
type Number interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Values converts a typed slice for Sum.
//
//	calc.Sum(calc.Values([]string{"1.5", "2.25"})...)
func Values[T Number](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = normalizeKind(x)
	}
	return out
}

// normalizeKind maps named types onto their underlying kind so that
// mathx.ToString recognizes them.
func normalizeKind[T Number](x T) any {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32:
		return float32(rv.Float())
	default:
		return rv.Float()
	}
}

func parseOperand(op string, v any) (string, error) {
	if acc, ok := v.(*Accumulator); ok {
		if acc == nil {
			return "", errors.CalcInvalidInput(op, "<nil accumulator>", nil)
		}
		return acc.RawValue(), nil
	}
	value, err := mathx.ToString(v)
	if err != nil {
		return "", errors.CalcInvalidInput(op, v, err)
	}
	return value, nil
}
