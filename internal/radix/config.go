package radix

// MinBase and MaxBase bound the bases accepted for custom output and explicit
// input.
const (
	MinBase = 2
	MaxBase = 36
)

// RenderConfig selects which radices are rendered and how. It is built once
// per invocation and passed by value.
type RenderConfig struct {
	ShowDecimal bool
	ShowHex     bool
	ShowBinary  bool

	CustomBaseEnabled bool
	CustomBase        int

	HexUppercase    bool
	ShowRadixPrefix bool
	GroupDigits     bool

	BitWidthEnabled bool
	BitWidth        int
}

// ValidateBitWidth returns an *InvalidBitWidthError unless width is one of
// 8, 16, 32 or 64.
func ValidateBitWidth(width int) error {
	switch width {
	case 8, 16, 32, 64:
		return nil
	}
	return &InvalidBitWidthError{Width: width}
}

// ValidateBase returns an *InvalidCustomBaseError unless base is within
// [MinBase, MaxBase].
func ValidateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &InvalidCustomBaseError{Base: base}
	}
	return nil
}

// Validate checks the numeric fields that are in use. Mutual exclusion of the
// output modes is the caller's responsibility.
func (c RenderConfig) Validate() error {
	if c.CustomBaseEnabled {
		if err := ValidateBase(c.CustomBase); err != nil {
			return err
		}
	}
	if c.BitWidthEnabled {
		if err := ValidateBitWidth(c.BitWidth); err != nil {
			return err
		}
	}
	return nil
}

// mask truncates u to the configured bit width, simulating fixed-width
// two's-complement wraparound. Widths of 64 and above leave u untouched.
func (c RenderConfig) mask(u uint64) uint64 {
	if !c.BitWidthEnabled || c.BitWidth >= 64 || c.BitWidth <= 0 {
		return u
	}
	return u & (uint64(1)<<uint(c.BitWidth) - 1)
}
