package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bconv/internal/app"
	"github.com/vk/bconv/internal/config"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectedConfig *app.Config
	}{
		{
			name:           "Positional value with defaults",
			args:           []string{"255"},
			expectedConfig: &app.Config{Literal: "255"},
		},
		{
			name: "Hex only with width",
			args: []string{"-x", "-w", "8", "0x1FF"},
			expectedConfig: &app.Config{
				Literal:   "0x1FF",
				Selected:  []string{config.OutputHex},
				Overrides: config.Profile{BitWidth: config.Int(8)},
			},
		},
		{
			name:           "Negative literal is not taken for a flag",
			args:           []string{"-d", "-5"},
			expectedConfig: &app.Config{Literal: "-5", Selected: []string{config.OutputDecimal}},
		},
		{
			name:           "Negative prefixed literal after terminator",
			args:           []string{"--bin", "--", "-0b101"},
			expectedConfig: &app.Config{Literal: "-0b101", Selected: []string{config.OutputBinary}},
		},
		{
			name: "Negative literal after bundled width flag",
			args: []string{"-gw", "8", "-5"},
			expectedConfig: &app.Config{
				Literal: "-5",
				Overrides: config.Profile{
					GroupDigits: config.Bool(true),
					BitWidth:    config.Int(8),
				},
			},
		},
		{
			name: "Custom base",
			args: []string{"-o", "36", "1295"},
			expectedConfig: &app.Config{
				Literal:   "1295",
				Overrides: config.Profile{OutputBase: config.Int(36)},
			},
		},
		{
			name:           "Explicit input base with negative value",
			args:           []string{"-i", "8", "-777"},
			expectedConfig: &app.Config{Literal: "-777", InputBase: 8},
		},
		{
			name: "Formatting flags and profiles",
			args: []string{"-g", "-p", "--upper=false", "-c", "a.hcl", "--config=b.yaml", "1"},
			expectedConfig: &app.Config{
				Literal:      "1",
				ProfilePaths: []string{"a.hcl", "b.yaml"},
				Overrides: config.Profile{
					GroupDigits:  config.Bool(true),
					RadixPrefix:  config.Bool(true),
					HexUppercase: config.Bool(false),
				},
			},
		},
		{
			name: "Log settings are normalized",
			args: []string{"--log-level=DEBUG", "--log-format", "JSON", "7"},
			expectedConfig: &app.Config{
				Literal: "7",
				Overrides: config.Profile{
					LogLevel:  config.String("debug"),
					LogFormat: config.String("json"),
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out, nil)

			require.NoError(t, err)
			require.False(t, shouldExit)
			if diff := cmp.Diff(tc.expectedConfig, cfg, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_CleanExit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		stdin       io.Reader
		outContains string
	}{
		{name: "Help flag", args: []string{"-h"}, outContains: "Usage:"},
		{name: "Long help flag", args: []string{"--help", "255"}, outContains: "Usage:"},
		{name: "Version flag", args: []string{"--version"}, outContains: "version:" + Version},
		{name: "No value prints usage", args: nil, outContains: "Usage:"},
		{name: "Empty stdin prints usage", args: []string{"-x"}, stdin: strings.NewReader("\n\n"), outContains: "Usage:"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out, tc.stdin)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), tc.outContains)
		})
	}
}

func TestParse_Stdin(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-x"}, &bytes.Buffer{}, strings.NewReader("\n   0xFF  \nignored\n"))
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "0xFF", cfg.Literal)
	assert.Equal(t, []string{config.OutputHex}, cfg.Selected)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "Conflicting output flags", args: []string{"-d", "-x", "1"}, errContains: "conflicting output options: dec, hex"},
		{name: "Custom base with binary", args: []string{"-b", "-o", "8", "1"}, errContains: "conflicting output options: bin, base"},
		{name: "Unsupported width", args: []string{"-w", "24", "1"}, errContains: "unsupported bit width 24"},
		{name: "Zero width", args: []string{"-w", "0", "1"}, errContains: "unsupported bit width 0"},
		{name: "Base out of range", args: []string{"-o", "37", "1"}, errContains: "unsupported base 37"},
		{name: "Zero input base", args: []string{"-i", "0", "1"}, errContains: "unsupported base 0"},
		{name: "Unknown flag", args: []string{"--bogus", "1"}, errContains: "unknown flag: --bogus"},
		{name: "Too many values", args: []string{"1", "2"}, errContains: "expected exactly one value, got 2"},
		{name: "Invalid log level", args: []string{"--log-level=loud", "1"}, errContains: "invalid log-level"},
		{name: "Non-numeric width", args: []string{"-w", "wide", "1"}, errContains: "invalid argument"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{}, nil)

			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %T", err)
			assert.Equal(t, 1, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}

func TestProtectNegativeLiterals(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected []string
	}{
		{name: "no literals", args: []string{"-x", "255"}, expected: []string{"-x", "255"}},
		{name: "negative decimal", args: []string{"-x", "-255"}, expected: []string{"-x", "--", "-255"}},
		{name: "negative hex", args: []string{"-0x1F", "-g"}, expected: []string{"-g", "--", "-0x1F"}},
		{name: "flag value stays put", args: []string{"-o", "-3", "1"}, expected: []string{"-o", "-3", "1"}},
		{name: "bundled flag value stays put", args: []string{"-gw", "-5", "1"}, expected: []string{"-gw", "-5", "1"}},
		{name: "bundled bool flags", args: []string{"-gx", "-5"}, expected: []string{"-gx", "--", "-5"}},
		{name: "attached shorthand value", args: []string{"-w8", "-5"}, expected: []string{"-w8", "--", "-5"}},
		{name: "existing terminator", args: []string{"-9", "--", "-8"}, expected: []string{"--", "-9", "-8"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, protectNegativeLiterals(tc.args))
		})
	}
}
