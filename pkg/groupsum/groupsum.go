// ============================================================================
// hyperf-saas-helper - Precision Calculator
// ============================================================================
//
// Package:     groupsum
// Description: Multi-field GROUP BY summation on decimal strings
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package groupsum groups records by a set of fields and sums numeric fields
// per group with the precision calculator, like a SQL GROUP BY with SUM and
// COUNT.
package groupsum

import (
	"fmt"
	"strings"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
	"github.com/faed235/hyperf-saas-helper/pkg/calc"
)

// Undefined replaces a missing group field value.
const Undefined = "undefined"

// Record is one input or output row.
type Record = map[string]any

// Options controls rounding and naming of the result.
type Options struct {
	// Precision is the number of fractional digits each running sum is
	// rounded to after every addition.
	Precision int

	// CountField names the column holding the number of records per group.
	// It must not name a group or sum field.
	CountField string

	// Calculator performs the additions. Nil means calc.Default().
	Calculator *calc.Calculator
}

// DefaultOptions rounds to two digits and counts into "count".
func DefaultOptions() Options {
	return Options{
		Precision:  calc.DefaultPrecision,
		CountField: "count",
		Calculator: calc.Default(),
	}
}

// GroupSum groups records by the values of groupFields and sums sumFields
// per group. Groups appear in the order of their first record. Each output
// row holds the group field values, one decimal string per sum field and the
// record count. Missing or nil sum values count as zero.
func GroupSum(records []Record, groupFields, sumFields []string, opts Options) ([]Record, error) {
	if opts.Precision < 0 {
		return nil, errors.InvalidPrecision("group_sum", opts.Precision)
	}
	if opts.CountField == "" {
		opts.CountField = "count"
	}
	if opts.Calculator == nil {
		opts.Calculator = calc.Default()
	}
	for _, field := range append(append([]string{}, groupFields...), sumFields...) {
		if field == opts.CountField {
			return nil, errors.NewErrorBuilder(errors.ModuleGroupSum).
				Operation("group_sum").
				Messagef("count field %q is also a group or sum field", field).
				Code(mdwerror.CodeCalcInvalidInput).
				Detail("field", field).
				Build()
		}
	}

	var (
		rows  []Record
		index = make(map[string]int)
	)
	for i, item := range records {
		key := groupKey(item, groupFields)
		pos, ok := index[key]
		if !ok {
			pos = len(rows)
			index[key] = pos
			rows = append(rows, newRow(item, groupFields, sumFields, opts.CountField))
		}
		row := rows[pos]

		for _, field := range sumFields {
			sum, err := addField(opts, row[field].(string), item[field])
			if err != nil {
				return nil, errors.NewErrorBuilder(errors.ModuleGroupSum).
					Operation("sum").
					Messagef("cannot sum field %q of record %d", field, i).
					Cause(err).
					Code(mdwerror.CodeCalcInvalidInput).
					Detail("record", i).
					Detail("field", field).
					Build()
			}
			row[field] = sum
		}
		row[opts.CountField] = row[opts.CountField].(int) + 1
	}
	return rows, nil
}

func groupKey(item Record, groupFields []string) string {
	parts := make([]string, len(groupFields))
	for i, field := range groupFields {
		parts[i] = fmt.Sprint(fieldValue(item, field))
	}
	return strings.Join(parts, "|")
}

func fieldValue(item Record, field string) any {
	if v, ok := item[field]; ok && v != nil {
		return v
	}
	return Undefined
}

func newRow(item Record, groupFields, sumFields []string, countField string) Record {
	row := make(Record, len(groupFields)+len(sumFields)+1)
	for _, field := range groupFields {
		row[field] = fieldValue(item, field)
	}
	for _, field := range sumFields {
		row[field] = "0"
	}
	row[countField] = 0
	return row
}

func addField(opts Options, current string, value any) (string, error) {
	if value == nil {
		value = 0
	}
	acc, err := opts.Calculator.Init(current)
	if err != nil {
		return "", err
	}
	return acc.Add(value).Result(opts.Precision, false)
}
