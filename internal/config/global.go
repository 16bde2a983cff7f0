// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configDirOverride allows overriding the config directory (primarily
	// for testing).
	configDirOverride string

	// configFilePathOverride points Load at an explicit config file,
	// bypassing the platform directory lookup. Set by the --config flag.
	configFilePathOverride string
)

// SetConfigDirOverride replaces the platform config directory for the
// lifetime of the process. Pass "" to restore the default lookup.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride points Load at an explicit config file.
// Pass "" to restore the default lookup.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// Reset clears all overrides. Intended for tests.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}
