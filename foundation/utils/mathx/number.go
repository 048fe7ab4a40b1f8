// File: number.go
// Title: Canonical Decimal Strings
// Description: Parsing, normalization and comparison of decimal strings, and
//              conversion of Go numeric values to their exact decimal text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mathx

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

// MaxExponent bounds the exponent accepted in scientific notation so that
// expansion cannot allocate unbounded memory.
const MaxExponent = 4096

// Zero and One in canonical form.
const (
	Zero = "0"
	One  = "1"
)

// Normalize converts a decimal literal to canonical form. It accepts an
// optional sign, digits with an optional decimal point, and an optional
// exponent ("1.5e-3"). Surrounding whitespace is ignored.
func Normalize(s string) (string, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return "", errors.InvalidFormat(errors.ModuleMathx, s, "decimal literal")
	}

	neg := false
	switch lit[0] {
	case '-':
		neg = true
		lit = lit[1:]
	case '+':
		lit = lit[1:]
	}

	mant, exp := lit, 0
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		mant = lit[:i]
		e, err := strconv.Atoi(lit[i+1:])
		if err != nil || e > MaxExponent || e < -MaxExponent {
			return "", errors.InvalidFormat(errors.ModuleMathx, s, "decimal literal")
		}
		exp = e
	}

	intPart, fracPart, _ := strings.Cut(mant, ".")
	if intPart == "" && fracPart == "" || !allDigits(intPart) || !allDigits(fracPart) {
		return "", errors.InvalidFormat(errors.ModuleMathx, s, "decimal literal")
	}

	digits := intPart + fracPart
	point := len(intPart) + exp
	if point < 0 {
		digits = strings.Repeat("0", -point) + digits
		point = 0
	}
	if point > len(digits) {
		digits += strings.Repeat("0", point-len(digits))
	}
	return compose(neg, digits[:point], digits[point:]), nil
}

// MustNormalize is like Normalize but panics on invalid input.
// Use it for constants only.
func MustNormalize(s string) string {
	n, err := Normalize(s)
	if err != nil {
		panic(err)
	}
	return n
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compose builds a canonical string from a sign and unsigned digit parts.
func compose(neg bool, intPart, fracPart string) string {
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	fracPart = strings.TrimRight(fracPart, "0")

	out := intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg && out != Zero {
		out = "-" + out
	}
	return out
}

// split separates a canonical string into sign, integer and fraction digits.
func split(s string) (neg bool, intPart, fracPart string) {
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart, fracPart, _ = strings.Cut(s, ".")
	return neg, intPart, fracPart
}

// FromInt returns the canonical form of an integer.
func FromInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FromUint returns the canonical form of an unsigned integer.
func FromUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// FromFloat returns the shortest plain decimal text that round-trips f.
// NaN and infinities are rejected.
func FromFloat(f float64) (string, error) {
	return fromFloat(f, 64)
}

func fromFloat(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.InvalidInput(errors.ModuleMathx, "from_float", f, "finite number")
	}
	return Normalize(strconv.FormatFloat(f, 'f', -1, bitSize))
}

// ToString converts a Go value to a canonical decimal string. Supported are
// strings, all integer and float kinds, json.Number, *big.Int and any
// fmt.Stringer whose text is a decimal literal.
func ToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return Normalize(x)
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromUint(uint64(x)), nil
	case uint8:
		return FromUint(uint64(x)), nil
	case uint16:
		return FromUint(uint64(x)), nil
	case uint32:
		return FromUint(uint64(x)), nil
	case uint64:
		return FromUint(x), nil
	case float32:
		return fromFloat(float64(x), 32)
	case float64:
		return fromFloat(x, 64)
	case json.Number:
		return Normalize(string(x))
	case *big.Int:
		if x == nil {
			break
		}
		return x.String(), nil
	case fmt.Stringer:
		return Normalize(x.String())
	}
	return "", errors.InvalidInput(errors.ModuleMathx, "to_string", fmt.Sprintf("%T", v), "number or decimal string")
}

// Sign returns -1, 0 or +1 for a canonical string.
func Sign(s string) int {
	switch {
	case s == Zero:
		return 0
	case strings.HasPrefix(s, "-"):
		return -1
	default:
		return 1
	}
}

// IsZero reports whether a canonical string is zero.
func IsZero(s string) bool {
	return s == Zero
}

// Abs drops the sign of a canonical string.
func Abs(s string) string {
	return strings.TrimPrefix(s, "-")
}

// Neg flips the sign of a canonical string.
func Neg(s string) string {
	switch Sign(s) {
	case 0:
		return s
	case -1:
		return s[1:]
	default:
		return "-" + s
	}
}

// Scale returns the number of fractional digits of a canonical string.
func Scale(s string) int {
	_, _, frac := split(s)
	return len(frac)
}

// IsInteger reports whether a canonical string has no fractional part.
func IsInteger(s string) bool {
	return !strings.Contains(s, ".")
}

// Truncate cuts a canonical string to at most scale fractional digits,
// rounding toward zero.
func Truncate(s string, scale int) string {
	neg, intPart, fracPart := split(s)
	if len(fracPart) <= scale {
		return s
	}
	return compose(neg, intPart, fracPart[:scale])
}

// Compare compares two canonical strings exactly and returns -1, 0 or +1.
func Compare(a, b string) int {
	sa, sb := Sign(a), Sign(b)
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	if sa == 0 {
		return 0
	}
	c := compareAbs(a, b)
	if sa < 0 {
		return -c
	}
	return c
}

func compareAbs(a, b string) int {
	_, ai, af := split(a)
	_, bi, bf := split(b)
	if len(ai) != len(bi) {
		if len(ai) < len(bi) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ai, bi); c != 0 {
		return c
	}
	width := max(len(af), len(bf))
	af += strings.Repeat("0", width-len(af))
	bf += strings.Repeat("0", width-len(bf))
	return strings.Compare(af, bf)
}

// CompareAt compares two canonical strings after truncating both to scale
// fractional digits.
func CompareAt(a, b string, scale int) int {
	return Compare(Truncate(a, scale), Truncate(b, scale))
}
