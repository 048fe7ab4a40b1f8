package calc

import (
	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
)

// Sentinels for errors.Is. Every error returned by this package is a
// *mdwerror.Error carrying one of these codes.
var (
	ErrInvalidInput     = mdwerror.Sentinel(mdwerror.CodeCalcInvalidInput)
	ErrFrozen           = mdwerror.Sentinel(mdwerror.CodeCalcFrozenState)
	ErrDivisionByZero   = mdwerror.Sentinel(mdwerror.CodeCalcDivisionByZero)
	ErrZeroHasNoInverse = mdwerror.Sentinel(mdwerror.CodeCalcZeroHasNoInverse)
	ErrNegativeRadicand = mdwerror.Sentinel(mdwerror.CodeCalcNegativeRadicand)
	ErrInvalidPrecision = mdwerror.Sentinel(mdwerror.CodeCalcInvalidPrecision)
	ErrOverflow         = mdwerror.Sentinel(mdwerror.CodeCalcOverflow)
	ErrInvalidConfig    = mdwerror.Sentinel(mdwerror.CodeInvalidConfig)
)
