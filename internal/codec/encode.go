// Package codec validates "#"-delimited four-field strings and folds them
// into a single integer with base-256 positional weighting.
//
// Validation and folding intentionally use two different parsers:
// ParseStrict decides whether a field is a number within its range, while
// ParseLeadingInt supplies the integer that is folded. They disagree on
// inputs like "1e2" (validates as 100, folds as 1) and "0x10" (16 and 0).
package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// Delimiter separates fields in an input.
	Delimiter = "#"
	// FieldCount is the exact number of fields an input must have.
	FieldCount = 4
	// Base is the positional weight applied per field when folding.
	Base = 256
)

// fieldRanges holds the inclusive bounds per field position.
// Field 0 is narrower than the rest.
var fieldRanges = [FieldCount][2]int{
	{1, 128},
	{0, 255},
	{0, 255},
	{0, 255},
}

// FieldRange returns the inclusive bounds for the field at index i.
// It returns (0, -1) for an index outside 0..FieldCount-1.
func FieldRange(i int) (lo, hi int) {
	if i < 0 || i >= FieldCount {
		return 0, -1
	}
	return fieldRanges[i][0], fieldRanges[i][1]
}

// ValidateField checks a single raw field against the bounds of position i.
func ValidateField(i int, raw string) error {
	if i < 0 || i >= FieldCount {
		return fmt.Errorf("%w: index %d", ErrFieldCount, i)
	}
	v, err := ParseStrict(raw)
	if err != nil {
		return &FieldError{Index: i, Field: raw, Err: err}
	}
	lo, hi := FieldRange(i)
	if math.IsNaN(v) || v < float64(lo) || v > float64(hi) {
		return &FieldError{Index: i, Field: raw, Err: ErrOutOfRange}
	}
	return nil
}

// Encode validates input and returns its encoded value.
// ok is false for every kind of validation failure; a zero value with ok
// set is a valid result.
func Encode(input string) (value uint64, ok bool) {
	v, err := EncodeDetailed(input)
	return v, err == nil
}

// EncodeDetailed is Encode with the failure cause preserved. The returned
// error matches ErrInvalid and one of ErrFieldCount, ErrNotNumeric,
// ErrOutOfRange or ErrOverflow.
func EncodeDetailed(input string) (uint64, error) {
	fields := strings.Split(input, Delimiter)
	if len(fields) != FieldCount {
		return 0, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}

	for i, f := range fields {
		if err := ValidateField(i, f); err != nil {
			return 0, err
		}
	}

	var acc int64
	for i, f := range fields {
		v, err := ParseLeadingInt(f)
		if err != nil {
			return 0, &FieldError{Index: i, Field: f, Err: err}
		}
		next, ok := mulAdd(acc, v)
		if !ok {
			return 0, &FieldError{Index: i, Field: f, Err: ErrOverflow}
		}
		acc = next
	}
	if acc < 0 {
		return 0, ErrOverflow
	}
	return uint64(acc), nil
}

// mulAdd returns acc*Base + v, or false when the result does not fit in an int64.
func mulAdd(acc, v int64) (int64, bool) {
	if acc > math.MaxInt64/Base || acc < math.MinInt64/Base {
		return 0, false
	}
	acc *= Base
	if (v > 0 && acc > math.MaxInt64-v) || (v < 0 && acc < math.MinInt64-v) {
		return 0, false
	}
	return acc + v, true
}

// Join builds an input string from individual fields.
func Join(fields ...string) string {
	return strings.Join(fields, Delimiter)
}

// Format renders an Encode result: the decimal value, or sentinel on failure.
func Format(value uint64, ok bool, sentinel string) string {
	if !ok {
		return sentinel
	}
	return strconv.FormatUint(value, 10)
}
