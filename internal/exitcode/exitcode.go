package exitcode

import (
	"errors"
	"strings"

	"github.com/kjourdan1/hashenc/internal/codec"
)

const (
	OK         = 0
	Generic    = 1
	Validation = 2
	Config     = 3
	IO         = 4
)

type Error struct {
	Code  int
	Cause error
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Cause: err}
}

func Of(err error) int {
	if err == nil {
		return OK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	if errors.Is(err, codec.ErrInvalid) {
		return Validation
	}

	// Fallback: string-based classification for errors not yet wrapped with typed codes.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "validation") || strings.Contains(msg, "invalid"):
		return Validation
	case strings.Contains(msg, "config"):
		return Config
	case strings.Contains(msg, "no such file") || strings.Contains(msg, "permission denied"):
		return IO
	default:
		return Generic
	}
}
