// File: big.go
// Title: Arbitrary Precision Backend
// Description: Backend on scaled math/big integers. A value with k fractional
//              digits is held as value*10^k; every result is truncated toward
//              zero to the working scale.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation, pooling carried over from Decimal

package mathx

import (
	"math/big"
	"strings"
	"sync"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

var (
	intPool = sync.Pool{
		New: func() interface{} {
			return new(big.Int)
		},
	}

	ten = big.NewInt(10)
)

func getInt() *big.Int {
	i := intPool.Get().(*big.Int)
	i.SetInt64(0)
	return i
}

func putInt(i *big.Int) {
	if i != nil {
		intPool.Put(i)
	}
}

// BigBackend is the default high precision backend.
type BigBackend struct{}

// NewBigBackend creates the math/big backend.
func NewBigBackend() BigBackend {
	return BigBackend{}
}

// Name implements Backend.
func (BigBackend) Name() string { return BackendBig }

// Add implements Backend.
func (BigBackend) Add(a, b string, scale int) (string, error) {
	x, y, s := alignedPair(a, b)
	defer putInt(y)
	x.Add(x, y)
	return fromScaled(x, s, scale), nil
}

// Sub implements Backend.
func (BigBackend) Sub(a, b string, scale int) (string, error) {
	x, y, s := alignedPair(a, b)
	defer putInt(y)
	x.Sub(x, y)
	return fromScaled(x, s, scale), nil
}

// Mul implements Backend.
func (BigBackend) Mul(a, b string, scale int) (string, error) {
	x, sx := toScaled(a)
	y, sy := toScaled(b)
	defer putInt(y)
	x.Mul(x, y)
	return fromScaled(x, sx+sy, scale), nil
}

// Div implements Backend.
func (BigBackend) Div(a, b string, scale int) (string, error) {
	if IsZero(b) {
		return "", errors.DivisionByZero(errors.ModuleMathx, "div", a)
	}
	x, sx := toScaled(a)
	y, sy := toScaled(b)
	defer putInt(y)

	// a/b * 10^scale == x*10^(sy+scale) / (y*10^sx)
	shift(x, sy+scale)
	shift(y, sx)
	x.Quo(x, y)
	return fromScaled(x, scale, scale), nil
}

// Cmp implements Backend.
func (BigBackend) Cmp(a, b string, scale int) int {
	return CompareAt(a, b, scale)
}

// toScaled parses a canonical string into a pooled integer and its scale.
func toScaled(s string) (*big.Int, int) {
	neg, intPart, fracPart := split(s)
	n := getInt()
	n.SetString(intPart+fracPart, 10)
	if neg {
		n.Neg(n)
	}
	return n, len(fracPart)
}

func alignedPair(a, b string) (*big.Int, *big.Int, int) {
	x, sx := toScaled(a)
	y, sy := toScaled(b)
	switch {
	case sx < sy:
		shift(x, sy-sx)
		return x, y, sy
	case sy < sx:
		shift(y, sx-sy)
	}
	return x, y, sx
}

// shift multiplies n by 10^k in place.
func shift(n *big.Int, k int) {
	if k <= 0 {
		return
	}
	p := getInt()
	p.Exp(ten, big.NewInt(int64(k)), nil)
	n.Mul(n, p)
	putInt(p)
}

// fromScaled renders n / 10^from truncated to scale digits and returns n to the pool.
func fromScaled(n *big.Int, from, scale int) string {
	defer putInt(n)
	if from > scale {
		p := getInt()
		p.Exp(ten, big.NewInt(int64(from-scale)), nil)
		n.Quo(n, p)
		putInt(p)
		from = scale
	}

	neg := n.Sign() < 0
	digits := n.Text(10)
	if neg {
		digits = digits[1:]
	}
	if len(digits) <= from {
		digits = strings.Repeat("0", from-len(digits)+1) + digits
	}
	cut := len(digits) - from
	return compose(neg, digits[:cut], digits[cut:])
}
