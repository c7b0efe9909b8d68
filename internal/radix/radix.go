package radix

// Radix identifies how a literal was recognized by Detect or DetectBase.
type Radix int

const (
	RadixInvalid Radix = iota
	RadixDecimal
	RadixBinary
	RadixHex
	// RadixForced marks a literal parsed under an explicit base other than 2, 10
	// or 16.
	RadixForced
)

// String returns a short human-readable name for the radix.
func (r Radix) String() string {
	switch r {
	case RadixDecimal:
		return "decimal"
	case RadixBinary:
		return "binary"
	case RadixHex:
		return "hex"
	case RadixForced:
		return "forced"
	default:
		return "invalid"
	}
}

// radixForBase maps a numeric base to the Radix reported for it.
func radixForBase(base int) Radix {
	switch base {
	case 2:
		return RadixBinary
	case 10:
		return RadixDecimal
	case 16:
		return RadixHex
	default:
		return RadixForced
	}
}

// ParsedInput is the result of parsing a single literal.
type ParsedInput struct {
	Value int64
	Radix Radix
	// Base is the numeric base the digits were read in.
	Base int
}

// FromInt64 wraps an already known value, skipping detection entirely.
func FromInt64(v int64) ParsedInput {
	return ParsedInput{Value: v, Radix: RadixDecimal, Base: 10}
}
