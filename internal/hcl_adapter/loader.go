package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/bconv/internal/config"
	"github.com/vk/bconv/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// profileFile mirrors the attributes allowed at the top level of a profile.
// Attributes not listed here are rejected by the decoder.
type profileFile struct {
	HexUppercase *bool   `hcl:"hex_uppercase,optional"`
	RadixPrefix  *bool   `hcl:"radix_prefix,optional"`
	GroupDigits  *bool   `hcl:"group_digits,optional"`
	BitWidth     *int    `hcl:"bit_width,optional"`
	Output       *string `hcl:"output,optional"`
	OutputBase   *int    `hcl:"output_base,optional"`
	LogLevel     *string `hcl:"log_level,optional"`
	LogFormat    *string `hcl:"log_format,optional"`
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses a single HCL profile and translates it into a config.Profile.
func (l *Loader) Load(ctx context.Context, path string) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	profile, diags := decodeProfile(file.Body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	logger.Debug("HCL profile loaded.", "path", path)
	return profile, nil
}

// decodeProfile decodes body against the profile schema using the shared
// evaluation context.
func decodeProfile(body hcl.Body) (*config.Profile, hcl.Diagnostics) {
	var raw profileFile
	diags := gohcl.DecodeBody(body, newEvalContext(), &raw)
	if diags.HasErrors() {
		return nil, diags
	}
	return &config.Profile{
		HexUppercase: raw.HexUppercase,
		RadixPrefix:  raw.RadixPrefix,
		GroupDigits:  raw.GroupDigits,
		BitWidth:     raw.BitWidth,
		Output:       raw.Output,
		OutputBase:   raw.OutputBase,
		LogLevel:     raw.LogLevel,
		LogFormat:    raw.LogFormat,
	}, diags
}
