package radix

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		literal       string
		expectedValue int64
		expectedRadix Radix
	}{
		{name: "plain decimal", literal: "255", expectedValue: 255, expectedRadix: RadixDecimal},
		{name: "zero", literal: "0", expectedValue: 0, expectedRadix: RadixDecimal},
		{name: "leading zeros stay decimal", literal: "007", expectedValue: 7, expectedRadix: RadixDecimal},
		{name: "leading whitespace is trimmed", literal: " \t 42", expectedValue: 42, expectedRadix: RadixDecimal},
		{name: "negative decimal", literal: "-42", expectedValue: -42, expectedRadix: RadixDecimal},
		{name: "explicit plus decimal", literal: "+7", expectedValue: 7, expectedRadix: RadixDecimal},
		{name: "max int64", literal: "9223372036854775807", expectedValue: math.MaxInt64, expectedRadix: RadixDecimal},
		{name: "min int64", literal: "-9223372036854775808", expectedValue: math.MinInt64, expectedRadix: RadixDecimal},
		{name: "hex lower prefix", literal: "0x1FF", expectedValue: 511, expectedRadix: RadixHex},
		{name: "hex upper prefix mixed digits", literal: "0XfF", expectedValue: 255, expectedRadix: RadixHex},
		{name: "negative hex applies sign to magnitude", literal: "-0xFF", expectedValue: -255, expectedRadix: RadixHex},
		{name: "hex max int64", literal: "0x7FFFFFFFFFFFFFFF", expectedValue: math.MaxInt64, expectedRadix: RadixHex},
		{name: "negative hex min int64", literal: "-0x8000000000000000", expectedValue: math.MinInt64, expectedRadix: RadixHex},
		{name: "binary", literal: "0b101", expectedValue: 5, expectedRadix: RadixBinary},
		{name: "binary upper prefix", literal: "0B11", expectedValue: 3, expectedRadix: RadixBinary},
		{name: "negative binary", literal: "-0b101", expectedValue: -5, expectedRadix: RadixBinary},
		{name: "binary zero", literal: "0b0", expectedValue: 0, expectedRadix: RadixBinary},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			parsed, err := Detect(tc.literal)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedValue, parsed.Value)
			assert.Equal(t, tc.expectedRadix, parsed.Radix)
		})
	}
}

func TestDetect_Invalid(t *testing.T) {
	t.Parallel()

	literals := []string{
		"",
		"   ",
		"-",
		"--1",
		"0b",
		"-0b",
		"0x",
		"-0x",
		"0b102",
		"0x1G",
		"0x-1",
		"0x 1",
		"0x_1",
		"+0x10",
		"12a",
		"42 ",
		"1_000",
		"9223372036854775808",
		"-9223372036854775809",
		"0x8000000000000000",
		"0xFFFFFFFFFFFFFFFF",
		"0x10000000000000000",
		"-0x8000000000000001",
	}

	for _, literal := range literals {
		t.Run(strconv.Quote(literal), func(t *testing.T) {
			t.Parallel()
			parsed, err := Detect(literal)
			require.Error(t, err)

			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, literal, inputErr.Literal)
			assert.Equal(t, ParsedInput{}, parsed, "no partial value on failure")
		})
	}
}

func TestDetect_DecimalRoundTrip(t *testing.T) {
	t.Parallel()

	literals := []string{"255", "-0b101", "0x1FF", "-0x8000000000000000", "0b0", "  +12", "9223372036854775807"}
	for _, literal := range literals {
		t.Run(literal, func(t *testing.T) {
			first, err := Detect(literal)
			require.NoError(t, err)

			second, err := Detect(strconv.FormatInt(first.Value, 10))
			require.NoError(t, err)
			assert.Equal(t, first.Value, second.Value)
			assert.Equal(t, RadixDecimal, second.Radix)
		})
	}
}

func TestDetectBase(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		literal       string
		base          int
		expectedValue int64
		expectedRadix Radix
	}{
		{name: "base 36", literal: "zz", base: 36, expectedValue: 1295, expectedRadix: RadixForced},
		{name: "negative octal", literal: "-777", base: 8, expectedValue: -511, expectedRadix: RadixForced},
		{name: "plus sign", literal: "+11", base: 3, expectedValue: 4, expectedRadix: RadixForced},
		{name: "hex without prefix", literal: "ff", base: 16, expectedValue: 255, expectedRadix: RadixHex},
		{name: "binary without prefix", literal: "101", base: 2, expectedValue: 5, expectedRadix: RadixBinary},
		{name: "decimal", literal: " 10", base: 10, expectedValue: 10, expectedRadix: RadixDecimal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			parsed, err := DetectBase(tc.literal, tc.base)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedValue, parsed.Value)
			assert.Equal(t, tc.expectedRadix, parsed.Radix)
			assert.Equal(t, tc.base, parsed.Base)
		})
	}
}

func TestDetectBase_Errors(t *testing.T) {
	t.Parallel()

	_, err := DetectBase("19", 8)
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)

	_, err = DetectBase("0x10", 16)
	require.ErrorAs(t, err, &inputErr, "prefixes are not accepted under an explicit base")

	_, err = DetectBase("", 8)
	require.ErrorAs(t, err, &inputErr)

	for _, base := range []int{0, 1, 37, -2} {
		_, err = DetectBase("1", base)
		var baseErr *InvalidCustomBaseError
		require.ErrorAs(t, err, &baseErr)
		assert.Equal(t, base, baseErr.Base)
	}
}

func TestFromInt64(t *testing.T) {
	parsed := FromInt64(-17)
	assert.Equal(t, ParsedInput{Value: -17, Radix: RadixDecimal, Base: 10}, parsed)
}

func TestRadix_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "decimal", RadixDecimal.String())
	assert.Equal(t, "binary", RadixBinary.String())
	assert.Equal(t, "hex", RadixHex.String())
	assert.Equal(t, "forced", RadixForced.String())
	assert.Equal(t, "invalid", RadixInvalid.String())
	assert.Equal(t, RadixHex, radixForBase(16))
	assert.Equal(t, RadixForced, radixForBase(8))
	assert.Equal(t, "FF", Hex(255, RenderConfig{HexUppercase: true}))
}
