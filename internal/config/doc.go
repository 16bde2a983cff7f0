// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format. Configuration is resolved from, in increasing precedence:
// built-in defaults, the config file (config.toml in the platform config
// directory, or the file passed via --config), and PSSHORT_* environment
// variables.
package config
