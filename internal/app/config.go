package app

import (
	"errors"

	"github.com/vk/bconv/internal/config"
	"github.com/vk/bconv/internal/radix"
)

// Config holds everything a single conversion needs, as given by the caller.
type Config struct {
	// Literal is the raw value to detect. When empty, Value is used instead.
	Literal string
	Value   *int64

	// InputBase forces the literal to be read in this base; 0 auto-detects.
	InputBase int

	// ProfilePaths are profile files applied in order before Overrides.
	ProfilePaths []string

	// Selected lists the output modes picked explicitly (config.OutputDecimal,
	// config.OutputHex, config.OutputBinary). At most one is allowed.
	Selected []string

	// Overrides holds options set explicitly by the caller. They win over
	// every profile.
	Overrides config.Profile
}

// NewConfig validates cfg and returns a copy of it. All checks that do not
// depend on profile files happen here, before any output is produced.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Literal == "" && cfg.Value == nil {
		return nil, errors.New("a value to convert is required")
	}

	if cfg.InputBase != 0 {
		if err := radix.ValidateBase(cfg.InputBase); err != nil {
			return nil, err
		}
	}

	if err := checkSelection(cfg.Selected, cfg.Overrides.OutputBase != nil); err != nil {
		return nil, err
	}

	if err := cfg.Overrides.Validate(); err != nil {
		return nil, err
	}
	if err := validateLogSettings(cfg.Overrides.LogLevel, cfg.Overrides.LogFormat); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// checkSelection enforces that decimal-only, hex-only, binary-only and
// custom-base output are mutually exclusive.
func checkSelection(selected []string, customBase bool) error {
	flags := append([]string(nil), selected...)
	if customBase {
		flags = append(flags, "base")
	}
	if len(flags) > 1 {
		return &ConflictingFlagsError{Flags: flags}
	}
	return nil
}

// selectsOutput reports whether cfg picks an output mode itself, in which
// case profile output settings are ignored.
func (cfg *Config) selectsOutput() bool {
	return len(cfg.Selected) > 0 || cfg.Overrides.OutputBase != nil
}
