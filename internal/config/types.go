// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidRegistryPath is returned when the registry path has an unusable extension.
	ErrInvalidRegistryPath = errors.New("invalid registry path")
)

type (
	// ColorScheme selects the rendering palette for styled CLI output.
	ColorScheme string

	// Config is the root application configuration.
	Config struct {
		Registry RegistryConfig `mapstructure:"registry"`
		Output   OutputConfig   `mapstructure:"output"`
		UI       UIConfig       `mapstructure:"ui"`
	}

	// RegistryConfig selects the command registry the shortener resolves against.
	RegistryConfig struct {
		// Path points at a user registry file (.cue or .toml). Empty means
		// builtin catalog only.
		Path string `mapstructure:"path"`
		// IncludeBuiltin keeps the builtin catalog underneath the user
		// registry file. Disabling it restricts resolution to the file alone.
		IncludeBuiltin bool `mapstructure:"include_builtin"`
	}

	// OutputConfig controls the rewriter's final normalization pass.
	OutputConfig struct {
		// CRLFNewlines rewrites bare newlines into CRLF pairs in the output.
		CRLFNewlines bool `mapstructure:"crlf_newlines"`
		// CollapseSpaces reduces runs of spaces to a single space in the output.
		CollapseSpaces bool `mapstructure:"collapse_spaces"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		Verbose     bool        `mapstructure:"verbose"`
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}
)

// Validate checks the ColorScheme against the known values.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	}
	return fmt.Errorf("%w: %q (want auto, dark, or light)", ErrInvalidColorScheme, string(c))
}

// Validate checks the whole configuration for consistency.
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	if c.Registry.Path != "" {
		switch ext := strings.ToLower(filepath.Ext(c.Registry.Path)); ext {
		case ".cue", ".toml":
		default:
			return fmt.Errorf("%w: %q (want a .cue or .toml file)", ErrInvalidRegistryPath, c.Registry.Path)
		}
	}
	return nil
}

// DefaultConfig returns the built-in defaults: builtin catalog only, both
// normalization passes on.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Path:           "",
			IncludeBuiltin: true,
		},
		Output: OutputConfig{
			CRLFNewlines:   true,
			CollapseSpaces: true,
		},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}
