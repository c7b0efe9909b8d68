package radix

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Detect parses literal as a signed 64-bit integer, recognizing a 0b/0B
// (binary) or 0x/0X (hexadecimal) prefix after an optional leading '-'.
// Anything else is read as decimal. Leading whitespace is ignored; every
// other character must be consumed.
//
// For prefixed literals the sign applies to the magnitude, so "-0xFF" is
// -255 rather than a two's-complement pattern.
func Detect(literal string) (ParsedInput, error) {
	s := strings.TrimLeftFunc(literal, unicode.IsSpace)
	if s == "" {
		return ParsedInput{}, &InvalidInputError{Literal: literal, Reason: "empty input"}
	}

	negative := false
	body := s
	if body[0] == '-' {
		negative = true
		body = body[1:]
	}

	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'b', 'B':
			return parsePrefixed(literal, body[2:], 2, negative)
		case 'x', 'X':
			return parsePrefixed(literal, body[2:], 16, negative)
		}
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ParsedInput{}, &InvalidInputError{Literal: literal, Reason: parseReason(err, 10)}
	}
	return ParsedInput{Value: v, Radix: RadixDecimal, Base: 10}, nil
}

// DetectBase parses literal strictly in the given base, with an optional
// leading sign and no prefix. Leading whitespace is ignored.
func DetectBase(literal string, base int) (ParsedInput, error) {
	if err := ValidateBase(base); err != nil {
		return ParsedInput{}, err
	}
	s := strings.TrimLeftFunc(literal, unicode.IsSpace)
	if s == "" {
		return ParsedInput{}, &InvalidInputError{Literal: literal, Reason: "empty input"}
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	return parsePrefixed(literal, s, base, negative)
}

// parsePrefixed reads digits as an unsigned magnitude in base and applies the
// sign, rejecting magnitudes that do not fit in an int64.
func parsePrefixed(literal, digits string, base int, negative bool) (ParsedInput, error) {
	if digits == "" {
		return ParsedInput{}, &InvalidInputError{Literal: literal, Reason: "no digits after prefix"}
	}
	// ParseUint tolerates neither signs nor, for an explicit base, underscores,
	// so a successful parse means every byte was a digit.
	mag, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return ParsedInput{}, &InvalidInputError{Literal: literal, Reason: parseReason(err, base)}
	}

	var v int64
	switch {
	case negative && mag <= uint64(math.MaxInt64)+1:
		v = int64(-mag)
	case !negative && mag <= math.MaxInt64:
		v = int64(mag)
	default:
		return ParsedInput{}, &InvalidInputError{Literal: literal, Reason: "value out of signed 64-bit range"}
	}
	return ParsedInput{Value: v, Radix: radixForBase(base), Base: base}, nil
}

func parseReason(err error, base int) string {
	if errors.Is(err, strconv.ErrRange) {
		return "value out of signed 64-bit range"
	}
	return "not a valid base-" + strconv.Itoa(base) + " integer"
}
