// Package config loads formatter settings from an optional yangfmt.toml.
// Command-line flags always win over file settings, which win over the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the settings file yangfmt looks for.
const ManifestName = "yangfmt.toml"

// Config mirrors the [format] section of yangfmt.toml.
type Config struct {
	MaxWidth       int  `toml:"max-width"`
	Indent         int  `toml:"indent"`
	CanonicalOrder bool `toml:"canonical-order"`
}

type manifest struct {
	Format Config `toml:"format"`
}

// Load parses a yangfmt.toml file.
func Load(path string) (Config, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return m.Format, nil
}

// Find walks up from startDir to locate the nearest yangfmt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest yangfmt.toml above startDir, if one exists.
func Discover(startDir string) (Config, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Config{}, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}
