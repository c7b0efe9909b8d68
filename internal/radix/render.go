package radix

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// digitAlphabet maps digit values to characters for bases up to 36.
const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// groupSize is the number of digits between separators when grouping.
const groupSize = 4

// Decimal renders v as a signed decimal number. No formatting options apply.
func Decimal(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Hex renders the two's-complement bit pattern of v in base 16, truncated to
// the configured bit width.
func Hex(v int64, cfg RenderConfig) string {
	u := cfg.mask(uint64(v))
	digits := strconv.FormatUint(u, 16)
	if cfg.HexUppercase {
		digits = strings.ToUpper(digits)
	}
	if cfg.GroupDigits {
		digits = group(padToGroup(digits))
	}
	if cfg.ShowRadixPrefix {
		return "0x" + digits
	}
	return digits
}

// Binary renders the two's-complement bit pattern of v in base 2. When a bit
// width is configured every bit of that width is shown; otherwise the minimal
// representation is used.
func Binary(v int64, cfg RenderConfig) string {
	u := cfg.mask(uint64(v))

	var digits string
	if u == 0 {
		digits = "0"
		if cfg.GroupDigits {
			digits = "0000"
		}
	} else {
		msb := bits.Len64(u) - 1
		if cfg.BitWidthEnabled && msb < cfg.BitWidth-1 {
			msb = cfg.BitWidth - 1
		}
		var sb strings.Builder
		sb.Grow(msb + 1)
		for i := msb; i >= 0; i-- {
			sb.WriteByte('0' + byte(u>>uint(i)&1))
		}
		digits = sb.String()
		if cfg.GroupDigits {
			digits = group(padToGroup(digits))
		}
	}

	if cfg.ShowRadixPrefix {
		return "0b" + digits
	}
	return digits
}

// CustomBase renders v in the given base using the 0-9A-Z alphabet, with a
// leading '-' for negative values. The base must already be validated; an
// out-of-range base is a programming error and panics.
func CustomBase(v int64, base int) string {
	if err := ValidateBase(base); err != nil {
		panic(fmt.Sprintf("radix: CustomBase called with %v", err))
	}
	if v == 0 {
		return "0"
	}

	// Negating in uint64 keeps math.MinInt64 representable.
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}

	// 64 binary digits plus a sign is the longest possible result.
	var buf [65]byte
	pos := len(buf)
	b := uint64(base)
	for mag > 0 {
		pos--
		buf[pos] = digitAlphabet[mag%b]
		mag /= b
	}
	if v < 0 {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// padToGroup left-pads digits with zeros to a multiple of groupSize.
func padToGroup(digits string) string {
	if rem := len(digits) % groupSize; rem != 0 {
		return strings.Repeat("0", groupSize-rem) + digits
	}
	return digits
}

// group inserts a space every groupSize digits, counting from the least
// significant end.
func group(digits string) string {
	if len(digits) <= groupSize {
		return digits
	}
	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/groupSize)
	lead := len(digits) % groupSize
	if lead == 0 {
		lead = groupSize
	}
	sb.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += groupSize {
		sb.WriteByte(' ')
		sb.WriteString(digits[i : i+groupSize])
	}
	return sb.String()
}
