package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/bconv/internal/config"
	"github.com/vk/bconv/internal/ctxlog"
	"github.com/vk/bconv/internal/fsutil"
	"github.com/vk/bconv/internal/hcl_adapter"
	"github.com/vk/bconv/internal/yaml_adapter"
)

// defaultLoaders are the profile formats compiled into the bconv binary.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()}
}

// loadProfiles reads every path with the loader registered for its
// extension. A path nobody claims is an error rather than being skipped.
func loadProfiles(ctx context.Context, loaders []config.Loader, paths []string) ([]*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)

	byExt := make(map[string]config.Loader)
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
		}
	}

	files, err := expandProfilePaths(paths, byExt)
	if err != nil {
		return nil, err
	}

	profiles := make([]*config.Profile, 0, len(files))
	for _, path := range files {
		ext := strings.ToLower(filepath.Ext(path))
		loader, ok := byExt[ext]
		if !ok {
			return nil, fmt.Errorf("unsupported profile file %s: no loader for extension %q", path, ext)
		}
		profile, err := loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", path, err)
		}
		if err := validateLogSettings(profile.LogLevel, profile.LogFormat); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", path, err)
		}
		profiles = append(profiles, profile)
		logger.Debug("Profile applied.", "path", path)
	}
	return profiles, nil
}

// expandProfilePaths replaces every directory in paths with the profile
// files found inside it, in sorted order.
func expandProfilePaths(paths []string, byExt map[string]config.Loader) ([]string, error) {
	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing profile %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, exts...)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile directory %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// defaultProfile holds the built-in option values, every field set.
func defaultProfile() *config.Profile {
	return &config.Profile{
		HexUppercase: config.Bool(true),
		RadixPrefix:  config.Bool(false),
		GroupDigits:  config.Bool(false),
		Output:       config.String(config.OutputAll),
		LogLevel:     config.String(defaultLogLevel),
		LogFormat:    config.String(defaultLogFormat),
	}
}

// resolveProfile layers defaults, profiles and the caller's overrides. An
// output mode picked by the caller replaces whatever mode the profiles chose.
func resolveProfile(cfg *Config, profiles []*config.Profile) (*config.Profile, error) {
	merged := defaultProfile()
	for _, p := range profiles {
		merged = merged.Merge(p)
	}

	if cfg.selectsOutput() {
		merged.OutputBase = nil
		merged.Output = config.String(config.OutputAll)
		if len(cfg.Selected) == 1 {
			merged.Output = config.String(cfg.Selected[0])
		}
	}
	merged = merged.Merge(&cfg.Overrides)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if merged.OutputBase != nil && !strings.EqualFold(*merged.Output, config.OutputAll) {
		return nil, &ConflictingFlagsError{Flags: []string{"output", "output_base"}}
	}
	return merged, nil
}
