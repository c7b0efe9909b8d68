package config

import (
	"fmt"
	"strings"

	"github.com/vk/bconv/internal/radix"
)

// Output mode names accepted by Profile.Output.
const (
	OutputAll     = "all"
	OutputDecimal = "dec"
	OutputHex     = "hex"
	OutputBinary  = "bin"
)

// Profile holds optional conversion defaults. A nil field means "not set".
type Profile struct {
	HexUppercase *bool
	RadixPrefix  *bool
	GroupDigits  *bool
	BitWidth     *int
	Output       *string
	OutputBase   *int
	LogLevel     *string
	LogFormat    *string
}

// Merge returns a new Profile where every field set in over replaces the
// matching field of p. Neither input is modified.
func (p *Profile) Merge(over *Profile) *Profile {
	merged := &Profile{}
	if p != nil {
		*merged = *p
	}
	if over == nil {
		return merged
	}
	if over.HexUppercase != nil {
		merged.HexUppercase = over.HexUppercase
	}
	if over.RadixPrefix != nil {
		merged.RadixPrefix = over.RadixPrefix
	}
	if over.GroupDigits != nil {
		merged.GroupDigits = over.GroupDigits
	}
	if over.BitWidth != nil {
		merged.BitWidth = over.BitWidth
	}
	if over.Output != nil {
		merged.Output = over.Output
	}
	if over.OutputBase != nil {
		merged.OutputBase = over.OutputBase
	}
	if over.LogLevel != nil {
		merged.LogLevel = over.LogLevel
	}
	if over.LogFormat != nil {
		merged.LogFormat = over.LogFormat
	}
	return merged
}

// Validate checks that every set field holds a usable value.
func (p *Profile) Validate() error {
	if p == nil {
		return nil
	}
	if p.BitWidth != nil {
		if err := radix.ValidateBitWidth(*p.BitWidth); err != nil {
			return err
		}
	}
	if p.OutputBase != nil {
		if err := radix.ValidateBase(*p.OutputBase); err != nil {
			return err
		}
	}
	if p.Output != nil {
		switch strings.ToLower(*p.Output) {
		case OutputAll, OutputDecimal, OutputHex, OutputBinary:
		default:
			return fmt.Errorf("invalid output %q: must be one of %s, %s, %s, %s",
				*p.Output, OutputAll, OutputDecimal, OutputHex, OutputBinary)
		}
	}
	return nil
}

// Bool, Int and String allocate a pointer for a literal value.
func Bool(v bool) *bool       { return &v }
func Int(v int) *int          { return &v }
func String(v string) *string { return &v }
