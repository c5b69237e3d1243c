package codec

import (
	"errors"
	"fmt"
)

// ErrInvalid is matched by every validation failure returned from this package.
var ErrInvalid = errors.New("invalid input")

// Validation failure causes. All of them wrap ErrInvalid.
var (
	ErrFieldCount = fmt.Errorf("%w: expected %d %q-separated fields", ErrInvalid, FieldCount, Delimiter)
	ErrNotNumeric = fmt.Errorf("%w: not a number", ErrInvalid)
	ErrOutOfRange = fmt.Errorf("%w: out of range", ErrInvalid)
	ErrOverflow   = fmt.Errorf("%w: encoded value not representable", ErrInvalid)
)

// FieldError records which field failed and why.
type FieldError struct {
	Index int    // 0-based field position
	Field string // raw field text
	Err   error  // one of the cause sentinels
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrOutOfRange) {
		lo, hi := FieldRange(e.Index)
		return fmt.Sprintf("field %d (%q): %v, want %d..%d", e.Index, e.Field, e.Err, lo, hi)
	}
	return fmt.Sprintf("field %d (%q): %v", e.Index, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Reason returns a short machine-friendly name for the failure cause of err.
// It returns "" for nil and "invalid" for errors that carry no known cause.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFieldCount):
		return "field_count"
	case errors.Is(err, ErrNotNumeric):
		return "not_numeric"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	default:
		return "invalid"
	}
}
