package codec

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// decimalLiteral matches a signed decimal number with optional fraction and exponent.
// Either side of the decimal point may be empty, but not both.
var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// isSpace reports whether r is whitespace for numeric coercion purposes.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// ParseStrict interprets the whole of s as a number.
//
// Surrounding whitespace is ignored and an empty string is zero. Accepted
// forms are decimal literals with optional fraction and exponent, the
// Infinity keywords, and unsigned 0x/0o/0b integer literals. Any other text
// yields ErrNotNumeric.
func ParseStrict(s string) (float64, error) {
	t := strings.TrimFunc(s, isSpace)
	if t == "" {
		return 0, nil
	}

	switch t {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}

	if len(t) > 2 && t[0] == '0' {
		if base := radixPrefix(t[1]); base != 0 {
			return parseRadix(t[2:], base)
		}
	}

	if !decimalLiteral.MatchString(t) {
		return 0, ErrNotNumeric
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrNotNumeric
	}
	// ErrRange leaves f at ±Inf, which the range checks reject.
	return f, nil
}

func radixPrefix(c byte) float64 {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func parseRadix(digits string, base float64) (float64, error) {
	var v float64
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d < 0 || float64(d) >= base {
			return 0, ErrNotNumeric
		}
		v = v*base + float64(d)
	}
	return v, nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// ParseLeadingInt reads a base-10 integer from the start of s.
//
// Leading whitespace and a single sign are skipped, then the longest run of
// decimal digits is taken and everything after it is ignored, so "12abc"
// is 12 and "1.9" is 1. A missing digit run yields ErrNotNumeric and a run
// that does not fit in an int64 yields ErrOverflow.
func ParseLeadingInt(s string) (int64, error) {
	t := strings.TrimLeftFunc(s, isSpace)

	neg := false
	if t != "" && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}

	n := 0
	for n < len(t) && t[n] >= '0' && t[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, ErrNotNumeric
	}

	v, err := strconv.ParseInt(t[:n], 10, 64)
	if err != nil {
		return 0, ErrOverflow
	}
	if neg {
		v = -v
	}
	return v, nil
}
