// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jhochwald/PSCommandShortener/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "psshort"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for configuration environment variables.
	EnvPrefix = "PSSHORT"
)

// ConfigDir returns the psshort configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the fully resolved config file path, honoring the
// --config override when one was set.
func ConfigFilePath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load resolves the configuration from defaults, the config file, and
// PSSHORT_* environment variables, in that precedence order.
//
// A missing config file is not an error: the defaults apply. A file that
// exists but cannot be parsed, or whose values fail validation, returns the
// defaults together with an ActionableError so the CLI can warn and continue.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return DefaultConfig(), issue.WrapWithOperation(err, "resolve configuration directory")
		}
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing || configFilePathOverride != "" {
			return DefaultConfig(), issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(v.ConfigFileUsed()).
				WithSuggestion("Check the TOML syntax of the file").
				WithSuggestion("Run 'psshort config path' to see which file is read").
				Wrap(err).
				Build()
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return DefaultConfig(), issue.NewErrorContext().
			WithOperation("decode configuration").
			WithResource(v.ConfigFileUsed()).
			WithSuggestion("Check the field names against 'psshort config show'").
			Wrap(err).
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(v.ConfigFileUsed()).
			Wrap(err).
			Build()
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("registry.path", defaults.Registry.Path)
	v.SetDefault("registry.include_builtin", defaults.Registry.IncludeBuiltin)
	v.SetDefault("output.crlf_newlines", defaults.Output.CRLFNewlines)
	v.SetDefault("output.collapse_spaces", defaults.Output.CollapseSpaces)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
}
