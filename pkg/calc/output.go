package calc

import (
	"bytes"
	"encoding/json"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
)

// Serialized is the external representation of an accumulator.
type Serialized struct {
	RawValue       string `json:"raw_value" yaml:"raw_value"`
	RoundedValue   string `json:"rounded_value" yaml:"rounded_value"`
	FormattedValue string `json:"formatted_value" yaml:"formatted_value"`
}

// RawValue returns the unrounded canonical value.
func (a *Accumulator) RawValue() string {
	a.ensure()
	return a.value
}

// Result rounds the value to precision fractional digits. Values that
// already fit are returned as they are, without padding. roundUp rounds away
// from zero whenever a discarded digit is non-zero; otherwise ties round
// half away from zero. Trailing zeros are removed.
func (a *Accumulator) Result(precision int, roundUp bool) (string, error) {
	a.ensure()
	if a.err != nil {
		return "", a.err
	}
	if precision < 0 {
		return "", errors.InvalidPrecision("result", precision)
	}
	mode := mathx.RoundingModeHalfUp
	if roundUp {
		mode = mathx.RoundingModeUp
	}
	return mathx.Round(a.value, precision, mode), nil
}

// Rounded is Result(DefaultPrecision, false).
func (a *Accumulator) Rounded() (string, error) {
	return a.Result(DefaultPrecision, false)
}

// String implements fmt.Stringer with the rounded value, or the raw value
// when a chained operation failed.
func (a *Accumulator) String() string {
	if r, err := a.Rounded(); err == nil {
		return r
	}
	return a.RawValue()
}

// ToCurrency formats the value with two fractional digits, the given decimal
// separator and thousands grouping. An empty thousandsSep disables grouping.
func (a *Accumulator) ToCurrency(decimalSep, thousandsSep string) (string, error) {
	rounded, err := a.Rounded()
	if err != nil {
		return "", err
	}
	return mathx.FormatNumber(rounded, DefaultPrecision, decimalSep, thousandsSep), nil
}

// Formatted is ToCurrency(".", ",").
func (a *Accumulator) Formatted() (string, error) {
	return a.ToCurrency(".", ",")
}

// ToMoney formats the value in the conventions of a registered currency,
// e.g. "$1,234.50" for USD or "¥1,235" for JPY.
func (a *Accumulator) ToMoney(code string) (string, error) {
	a.ensure()
	if a.err != nil {
		return "", a.err
	}
	currency, ok := mathx.GetCurrency(code)
	if !ok {
		return "", errors.InvalidInput(errors.ModuleCalc, "to_money", code, "registered currency code")
	}
	return mathx.FormatMoney(a.value, currency), nil
}

// Serialize returns the raw, rounded and formatted forms of the value.
func (a *Accumulator) Serialize() (Serialized, error) {
	rounded, err := a.Rounded()
	if err != nil {
		return Serialized{}, err
	}
	formatted, err := a.Formatted()
	if err != nil {
		return Serialized{}, err
	}
	return Serialized{
		RawValue:       a.value,
		RoundedValue:   rounded,
		FormattedValue: formatted,
	}, nil
}

// MarshalJSON implements json.Marshaler with the Serialized form.
func (a *Accumulator) MarshalJSON() ([]byte, error) {
	s, err := a.Serialize()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON accepts the Serialized object, a JSON number or a JSON
// string. The value is taken from raw_value; the configuration of a is kept,
// or DefaultConfig is used for a zero accumulator.
func (a *Accumulator) UnmarshalJSON(data []byte) error {
	a.ensure()
	if a.frozen {
		return errors.FrozenState("unmarshal")
	}
	data = bytes.TrimSpace(data)
	var raw any
	switch {
	case len(data) == 0:
		return errors.CalcInvalidInput("unmarshal", "", nil)
	case data[0] == '{':
		var s Serialized
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.CalcInvalidInput("unmarshal", string(data), err)
		}
		raw = s.RawValue
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.CalcInvalidInput("unmarshal", string(data), err)
		}
		raw = s
	default:
		raw = json.Number(string(data))
	}

	value, err := parseOperand("unmarshal", raw)
	if err != nil {
		return err
	}
	*a = Accumulator{value: value, cfg: a.cfg}
	return nil
}
