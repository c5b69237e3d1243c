package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kjourdan1/hashenc/internal/codec"
)

func TestOf_Nil(t *testing.T) {
	if code := Of(nil); code != OK {
		t.Errorf("Of(nil) = %d, want %d", code, OK)
	}
}

func TestOf_CodedError(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"generic", Generic},
		{"validation", Validation},
		{"config", Config},
		{"io", IO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.code, fmt.Errorf("some error"))
			if got := Of(err); got != tt.code {
				t.Errorf("Of(Wrap(%d, ...)) = %d, want %d", tt.code, got, tt.code)
			}
		})
	}
}

func TestOf_WrappedCodedError(t *testing.T) {
	inner := Wrap(IO, fmt.Errorf("write report"))
	wrapped := fmt.Errorf("outer: %w", inner)
	if got := Of(wrapped); got != IO {
		t.Errorf("Of(wrapped coded error) = %d, want %d", got, IO)
	}
}

func TestOf_CodecError(t *testing.T) {
	_, err := codec.EncodeDetailed("135#101#1#5")
	if got := Of(err); got != Validation {
		t.Errorf("Of(codec error) = %d, want %d", got, Validation)
	}
}

func TestOf_StringFallback(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want int
	}{
		{"validation_keyword", "validation error in manifest", Validation},
		{"invalid_keyword", "invalid batch entry", Validation},
		{"config_keyword", "reading config file", Config},
		{"missing_file", "open x.yaml: no such file or directory", IO},
		{"permission", "open /root/x: permission denied", IO},
		{"generic_fallback", "something went wrong", Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.msg)
			if got := Of(err); got != tt.want {
				t.Errorf("Of(%q) = %d, want %d", tt.msg, got, tt.want)
			}
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	if got := Wrap(IO, nil); got != nil {
		t.Errorf("Wrap(code, nil) = %v, want nil", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(Config, cause)

	var coded *Error
	if !errors.As(err, &coded) {
		t.Fatal("errors.As should match *Error")
	}
	if coded.Code != Config {
		t.Errorf("Code = %d, want %d", coded.Code, Config)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the root cause through Unwrap")
	}
}

func TestError_ErrorMessage(t *testing.T) {
	err := Wrap(Validation, fmt.Errorf("bad input"))
	if err.Error() != "bad input" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad input")
	}
}
