// File: round.go
// Title: Decimal String Rounding
// Description: Rounds canonical decimal strings to a number of fractional
//              digits by inspecting the discarded digits. No floating point
//              and no big integers are involved, so the result is identical
//              on every platform.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Rounding modes on Decimal
// - 2026-10-17 v0.2.0: Rounding modes on canonical strings

package mathx

import "strings"

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds 0.5 away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds 0.5 to the nearest even digit (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds 0.5 toward zero
	RoundingModeHalfDown

	// RoundingModeUp rounds away from zero whenever a discarded digit is non-zero
	RoundingModeUp

	// RoundingModeDown truncates toward zero
	RoundingModeDown
)

// String returns the name of the rounding mode
func (m RoundingMode) String() string {
	switch m {
	case RoundingModeHalfUp:
		return "half_up"
	case RoundingModeHalfEven:
		return "half_even"
	case RoundingModeHalfDown:
		return "half_down"
	case RoundingModeUp:
		return "up"
	case RoundingModeDown:
		return "down"
	default:
		return "unknown"
	}
}

// Round rounds a canonical decimal string to at most places fractional
// digits. Values that already fit are returned unchanged; the result is
// canonical, so trailing zeros produced by rounding are removed.
func Round(s string, places int, mode RoundingMode) string {
	if places < 0 {
		places = 0
	}
	neg, intPart, fracPart := split(s)
	if len(fracPart) <= places {
		return s
	}

	kept, dropped := fracPart[:places], fracPart[places:]
	var last byte
	if places > 0 {
		last = kept[places-1]
	} else {
		last = intPart[len(intPart)-1]
	}

	if !roundsAway(mode, last, dropped) {
		return compose(neg, intPart, kept)
	}
	digits := increment(intPart + kept)
	cut := len(digits) - places
	return compose(neg, digits[:cut], digits[cut:])
}

func roundsAway(mode RoundingMode, last byte, dropped string) bool {
	first := dropped[0]
	rest := strings.TrimRight(dropped[1:], "0") != ""
	switch mode {
	case RoundingModeDown:
		return false
	case RoundingModeUp:
		return first != '0' || rest
	case RoundingModeHalfDown:
		return first > '5' || first == '5' && rest
	case RoundingModeHalfEven:
		if first != '5' || rest {
			return first > '5' || first == '5' && rest
		}
		return (last-'0')%2 == 1
	default:
		return first >= '5'
	}
}

// increment adds one to an unsigned digit string.
func increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
