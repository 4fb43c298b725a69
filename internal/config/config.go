// Package config holds the settings of the r3d command, read from an
// optional TOML file and overridden by flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/r3d/output"
)

// ErrInvalid is wrapped by every error from Validate and Load.
var ErrInvalid = errors.New("config: invalid configuration")

// Culling values. CullingScene keeps the flag from the scene file.
const (
	CullingScene    = "scene"
	CullingEnabled  = "enabled"
	CullingDisabled = "disabled"
)

// Config is the command configuration.
type Config struct {
	// OutputDir is prepended to every camera's output name.
	OutputDir string `toml:"output_dir"`
	// Format is the image format name; see output.ParseFormat.
	Format string `toml:"format"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Caption stamps the camera id into each image.
	Caption bool `toml:"caption"`
	// Scale enlarges each image by an integer factor.
	Scale int `toml:"scale"`
	// Workers bounds concurrent camera passes; 0 uses all CPUs.
	Workers int `toml:"workers"`
	// Culling overrides the scene's back-face culling flag.
	Culling string `toml:"culling"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputDir: ".",
		Format:    output.PPM.String(),
		LogLevel:  "info",
		Scale:     1,
		Workers:   1,
		Culling:   CullingScene,
	}
}

// Load reads a TOML file over the defaults. Keys the file sets replace the
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale %d must be at least 1", ErrInvalid, c.Scale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalid, c.Workers)
	}
	switch c.Culling {
	case CullingScene, CullingEnabled, CullingDisabled:
	default:
		return fmt.Errorf("%w: culling %q: want %s, %s or %s",
			ErrInvalid, c.Culling, CullingScene, CullingEnabled, CullingDisabled)
	}
	return nil
}

// OutputFormat returns the parsed Format.
func (c *Config) OutputFormat() output.Format {
	f, _ := output.ParseFormat(c.Format)
	return f
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return l, nil
}

// CullingOverride reports whether culling is forced and to which value.
func (c *Config) CullingOverride() (enabled, forced bool) {
	switch c.Culling {
	case CullingEnabled:
		return true, true
	case CullingDisabled:
		return false, true
	}
	return false, false
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
