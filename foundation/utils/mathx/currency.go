// File: currency.go
// Title: Currency Formatting
// Description: Currency registry and display formatting of canonical decimal
//              strings with thousands grouping and fixed fractional digits.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with currency formatting and operations
// - 2026-10-17 v0.2.0: Formatting on canonical strings, guarded registry

package mathx

import (
	"strings"
	"sync"
)

// Currency represents a currency with its properties
type Currency struct {
	Code          string // ISO 4217 code (e.g., "USD", "EUR")
	Symbol        string // Currency symbol (e.g., "$", "€")
	DecimalPlaces int    // Number of decimal places
	Name          string // Full name (e.g., "US Dollar")
}

// Common currencies
var (
	USD = Currency{Code: "USD", Symbol: "$", DecimalPlaces: 2, Name: "US Dollar"}
	EUR = Currency{Code: "EUR", Symbol: "€", DecimalPlaces: 2, Name: "Euro"}
	GBP = Currency{Code: "GBP", Symbol: "£", DecimalPlaces: 2, Name: "British Pound"}
	JPY = Currency{Code: "JPY", Symbol: "¥", DecimalPlaces: 0, Name: "Japanese Yen"}
	CHF = Currency{Code: "CHF", Symbol: "CHF ", DecimalPlaces: 2, Name: "Swiss Franc"}
	CNY = Currency{Code: "CNY", Symbol: "¥", DecimalPlaces: 2, Name: "Chinese Yuan"}
	BTC = Currency{Code: "BTC", Symbol: "₿", DecimalPlaces: 8, Name: "Bitcoin"}
)

var (
	registryMu       sync.RWMutex
	currencyRegistry = map[string]Currency{
		"USD": USD,
		"EUR": EUR,
		"GBP": GBP,
		"JPY": JPY,
		"CHF": CHF,
		"CNY": CNY,
		"BTC": BTC,
	}
)

// RegisterCurrency adds or replaces a currency in the registry
func RegisterCurrency(currency Currency) {
	registryMu.Lock()
	defer registryMu.Unlock()
	currencyRegistry[strings.ToUpper(currency.Code)] = currency
}

// GetCurrency retrieves a currency by code
func GetCurrency(code string) (Currency, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	currency, exists := currencyRegistry[strings.ToUpper(code)]
	return currency, exists
}

// GroupThousands inserts sep between groups of three digits of an unsigned
// integer digit string. An empty separator leaves the digits unchanged.
func GroupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatNumber rounds a canonical string half-up to places digits and
// renders it with exactly places fractional digits and grouped thousands.
// The sign is kept in front of the number.
func FormatNumber(s string, places int, decimalSep, thousandsSep string) string {
	if places < 0 {
		places = 0
	}
	neg, intPart, fracPart := split(Round(s, places, RoundingModeHalfUp))

	out := GroupThousands(intPart, thousandsSep)
	if places > 0 {
		out += decimalSep + fracPart + strings.Repeat("0", places-len(fracPart))
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatMoney renders a canonical string in the conventions of the currency:
// symbol prefix, the currency's decimal places, "." and "," separators.
func FormatMoney(s string, currency Currency) string {
	formatted := FormatNumber(s, currency.DecimalPlaces, ".", ",")
	if strings.HasPrefix(formatted, "-") {
		return "-" + currency.Symbol + formatted[1:]
	}
	return currency.Symbol + formatted
}
