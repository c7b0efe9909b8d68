// Package yaml_adapter reads bconv profiles written in YAML.
package yaml_adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/bconv/internal/config"
	"github.com/vk/bconv/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

type profileFile struct {
	HexUppercase *bool   `yaml:"hex_uppercase"`
	RadixPrefix  *bool   `yaml:"radix_prefix"`
	GroupDigits  *bool   `yaml:"group_digits"`
	BitWidth     *int    `yaml:"bit_width"`
	Output       *string `yaml:"output"`
	OutputBase   *int    `yaml:"output_base"`
	LogLevel     *string `yaml:"log_level"`
	LogFormat    *string `yaml:"log_format"`
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load parses a single YAML profile. Unknown keys are rejected and an empty
// document yields an empty profile.
func (l *Loader) Load(ctx context.Context, path string) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	var raw profileFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	logger.Debug("YAML profile loaded.", "path", path)
	return &config.Profile{
		HexUppercase: raw.HexUppercase,
		RadixPrefix:  raw.RadixPrefix,
		GroupDigits:  raw.GroupDigits,
		BitWidth:     raw.BitWidth,
		Output:       raw.Output,
		OutputBase:   raw.OutputBase,
		LogLevel:     raw.LogLevel,
		LogFormat:    raw.LogFormat,
	}, nil
}
