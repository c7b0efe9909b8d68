package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/bconv/internal/config"
	"github.com/vk/bconv/internal/ctxlog"
	"github.com/vk/bconv/internal/radix"
)

// App encapsulates one conversion: its resolved options, its input and the
// writers it reports to.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	render radix.RenderConfig
}

// NewApp resolves the effective options for appConfig and returns a ready
// App. Results are written to outW and logs to logW. When no loaders are
// given the HCL and YAML profile loaders are used.
func NewApp(outW, logW io.Writer, appConfig *Config, loaders ...config.Loader) (*App, error) {
	// Profiles may change the log settings, so start from the overrides and
	// rebuild the logger once everything is merged.
	bootstrap := defaultProfile().Merge(&appConfig.Overrides)
	logger := newLogger(strings.ToLower(*bootstrap.LogLevel), strings.ToLower(*bootstrap.LogFormat), logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}
	profiles, err := loadProfiles(ctx, loaders, appConfig.ProfilePaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	resolved, err := resolveProfile(appConfig, profiles)
	if err != nil {
		return nil, err
	}
	logger = newLogger(strings.ToLower(*resolved.LogLevel), strings.ToLower(*resolved.LogFormat), logW)

	render := renderConfig(resolved)
	if err := render.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Options resolved.",
		"profiles", len(profiles),
		"output", *resolved.Output,
		"custom_base", render.CustomBase,
		"bit_width", render.BitWidth,
		"group", render.GroupDigits,
	)

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		render: render,
	}, nil
}

// RenderConfig returns the resolved rendering options. This is primarily for
// testing.
func (a *App) RenderConfig() radix.RenderConfig {
	return a.render
}

// renderConfig translates a fully populated profile into radix options.
func renderConfig(p *config.Profile) radix.RenderConfig {
	rc := radix.RenderConfig{
		HexUppercase:    *p.HexUppercase,
		ShowRadixPrefix: *p.RadixPrefix,
		GroupDigits:     *p.GroupDigits,
	}
	if p.BitWidth != nil {
		rc.BitWidthEnabled = true
		rc.BitWidth = *p.BitWidth
	}
	if p.OutputBase != nil {
		rc.CustomBaseEnabled = true
		rc.CustomBase = *p.OutputBase
		return rc
	}

	switch strings.ToLower(*p.Output) {
	case config.OutputDecimal:
		rc.ShowDecimal = true
	case config.OutputHex:
		rc.ShowHex = true
	case config.OutputBinary:
		rc.ShowBinary = true
	default:
		rc.ShowDecimal, rc.ShowHex, rc.ShowBinary = true, true, true
	}
	return rc
}
