package lrc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseTime converts a timestamp token such as "[01:02.50" into seconds.
//
// The closing bracket is not part of the token; Parse strips it when it
// splits the line. The first character of the minutes field is dropped
// (it is the opening bracket), and the result is minutes*60 + seconds.
// Pieces after a second colon are ignored.
//
// No range checks are made: "[00:75" yields 75. A token without a colon,
// or a field that is not a number, yields NaN.
func ParseTime(raw string) float64 {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return math.NaN()
	}

	minutes := parts[0]
	if _, size := utf8.DecodeRuneInString(minutes); size > 0 {
		minutes = minutes[size:]
	}

	return toNumber(minutes)*60 + toNumber(parts[1])
}

// decimalLiteral matches the plain decimal forms a numeric field may take:
// an optional sign, digits with an optional fraction, and an optional
// exponent. Go-only spellings such as "inf", "1_0" or hex floats do not
// match.
var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// toNumber converts a numeric field with loose rules: surrounding
// whitespace is ignored, an empty field is zero, "Infinity" (optionally
// signed) is infinite, unsigned 0x/0o/0b integers are read in their base,
// and anything else that is not a decimal literal is NaN.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return prefixedInteger(s[2:], 16)
		case 'o', 'O':
			return prefixedInteger(s[2:], 8)
		case 'b', 'B':
			return prefixedInteger(s[2:], 2)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range values still carry a usable ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// prefixedInteger reads the digits of a 0x/0o/0b literal. Values too large
// for an integer keep growing as a float instead of failing.
func prefixedInteger(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}

	var v float64
	for _, r := range digits {
		d, err := strconv.ParseUint(string(r), base, 8)
		if err != nil {
			return math.NaN()
		}
		v = v*float64(base) + float64(d)
	}
	return v
}
