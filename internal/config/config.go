// Package config holds runtime configuration: defaults, validation, and an
// optional TOML file layer. CLI flags are bound in cmd and take precedence
// over file values.
package config

import (
	"errors"
	"fmt"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a TOML file, then mutated by CLI flags before
// being passed (by pointer) to the packages that need it.
type Config struct {
	// Paths and addressing.
	InputFile    string `toml:"-"`             // positional argument
	OutputDir    string `toml:"output_dir"`    // receives media files and the manifest
	URLPrefix    string `toml:"url_prefix"`    // prepended verbatim to manifest URLs
	ManifestName string `toml:"manifest_name"` // default "manifest.json"

	// Track selection.
	PreferredLanguage string `toml:"preferred_language"` // e.g. "eng"; "" disables the language score

	// Behavior.
	DryRun  bool `toml:"-"`
	Verbose bool `toml:"verbose"`

	// Logging.
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		OutputDir:    "extracted",
		ManifestName: "manifest.json",
	}
}

// Validate checks the fields the pipeline depends on. The stream language
// tag bound mirrors what inspection tools emit; a longer value can never
// match and would silently disable the preference.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return errors.New("need an input media file")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if c.ManifestName == "" {
		return errors.New("manifest name must not be empty")
	}
	if len(c.PreferredLanguage) > 4 {
		return fmt.Errorf("preferred language %q: stream language tags are at most 4 characters", c.PreferredLanguage)
	}
	return nil
}
