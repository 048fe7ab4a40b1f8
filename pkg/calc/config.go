package calc

import (
	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
)

const (
	// DefaultScale is the number of fractional digits kept by intermediate results.
	DefaultScale = 10

	// MaxScale bounds Config.Scale.
	MaxScale = 100

	// DefaultPrecision is the number of fractional digits of rounded output.
	DefaultPrecision = 2

	// MaxSqrtIterations bounds the Newton iteration of Sqrt.
	MaxSqrtIterations = 100
)

// Config selects how an accumulator computes.
type Config struct {
	// HighPrecision enables Backend. When false, or when Backend is nil,
	// arithmetic runs on Fallback.
	HighPrecision bool

	// Scale is the number of fractional digits kept after every operation.
	// Digits beyond it are truncated toward zero.
	Scale int

	// Backend performs high precision arithmetic.
	Backend mathx.Backend

	// Fallback performs native arithmetic.
	Fallback mathx.Backend
}

// DefaultConfig returns high precision on math/big at scale 10.
func DefaultConfig() Config {
	return Config{
		HighPrecision: true,
		Scale:         DefaultScale,
		Backend:       mathx.NewBigBackend(),
		Fallback:      mathx.NewFloatBackend(),
	}
}

// Validate checks the scale range.
func (c Config) Validate() error {
	if c.Scale < 0 || c.Scale > MaxScale {
		return errors.InvalidConfig("scale", c.Scale, "must be between 0 and 100")
	}
	return nil
}

// Precise reports whether arithmetic runs on the high precision backend.
func (c Config) Precise() bool {
	return c.HighPrecision && c.Backend != nil
}

// Arithmetic returns the backend that operations use under this config.
func (c Config) Arithmetic() mathx.Backend {
	if c.Precise() {
		return c.Backend
	}
	if c.Fallback != nil {
		return c.Fallback
	}
	return mathx.NewFloatBackend()
}
