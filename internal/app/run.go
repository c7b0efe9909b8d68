package app

import (
	"context"
	"fmt"

	"github.com/vk/bconv/internal/ctxlog"
	"github.com/vk/bconv/internal/radix"
)

// Run converts the configured input and writes one "<Label>:<text>" line per
// enabled radix. Nothing is written when the input is invalid.
func (a *App) Run(ctx context.Context) error {
	out, err := a.Convert(ctx)
	if err != nil {
		return err
	}
	if _, err := out.WriteTo(a.outW); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Convert detects the input and renders it without writing anything.
func (a *App) Convert(ctx context.Context) (radix.Output, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	parsed, err := a.parse()
	if err != nil {
		logger.Debug("Input rejected.", "literal", a.config.Literal, "error", err)
		return nil, err
	}
	logger.Debug("Input detected.", "value", parsed.Value, "radix", parsed.Radix.String(), "base", parsed.Base)

	out := radix.Render(parsed.Value, a.render)
	logger.Debug("Value rendered.", "lines", len(out))
	return out, nil
}

// parse picks the entry point matching the configuration: explicit base,
// auto-detection, or an already parsed value.
func (a *App) parse() (radix.ParsedInput, error) {
	switch {
	case a.config.Literal == "" && a.config.Value != nil:
		return radix.FromInt64(*a.config.Value), nil
	case a.config.InputBase != 0:
		return radix.DetectBase(a.config.Literal, a.config.InputBase)
	default:
		return radix.Detect(a.config.Literal)
	}
}
