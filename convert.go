package tinyclp

import (
	"errors"
	"strconv"
	"strings"
)

// Value is the closed set of types a flag can be parsed into. Extending the
// package to a new type means adding it here and giving convert a case for
// it; a Parse call site asking for anything else does not compile.
type Value interface {
	int | float64 | string | bool
}

// DefaultOf returns the built-in default for T: 0, 0.0, the empty string or
// false. Parse falls back to the caller's default, not this one; DefaultOf
// exists for call sites that have no opinion of their own.
func DefaultOf[T Value]() T {
	var zero T
	return zero
}

// convert turns the raw token following a flag into a T. Numeric
// conversions never fail: they read the longest usable prefix of the token
// and produce zero when there is none. A bool ignores the token entirely,
// the flag's presence alone already means true.
func convert[T Value](token string) T {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = leadingInt(token)
	case *float64:
		*p = leadingFloat(token)
	case *string:
		*p = token
	case *bool:
		*p = true
	}
	return v
}

const asciiSpace = " \t\n\v\f\r"

// leadingInt reads an optional sign and the longest run of decimal digits
// after any leading whitespace. No digits yields 0; a value out of range
// clamps to the nearest representable int.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, asciiSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

// leadingFloat reads the longest prefix of s that forms a decimal or
// scientific float after any leading whitespace, 0 when there is none.
func leadingFloat(s string) float64 {
	s = strings.TrimLeft(s, asciiSpace)
	for end := len(s); end > 0; end-- {
		f, err := strconv.ParseFloat(s[:end], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f
		}
	}
	return 0
}
