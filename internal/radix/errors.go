package radix

import "fmt"

// InvalidInputError reports a literal that could not be parsed completely as
// a signed 64-bit integer.
type InvalidInputError struct {
	Literal string
	Reason  string
}

// Error implements the error interface for InvalidInputError.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Literal, e.Reason)
}

// InvalidBitWidthError reports a bit width outside {8, 16, 32, 64}.
type InvalidBitWidthError struct {
	Width int
}

// Error implements the error interface for InvalidBitWidthError.
func (e *InvalidBitWidthError) Error() string {
	return fmt.Sprintf("unsupported bit width %d: must be 8, 16, 32 or 64", e.Width)
}

// InvalidCustomBaseError reports a base outside [MinBase, MaxBase].
type InvalidCustomBaseError struct {
	Base int
}

// Error implements the error interface for InvalidCustomBaseError.
func (e *InvalidCustomBaseError) Error() string {
	return fmt.Sprintf("unsupported base %d: must be between %d and %d", e.Base, MinBase, MaxBase)
}
