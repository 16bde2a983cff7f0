// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/jhochwald/PSCommandShortener/internal/config"
	"github.com/jhochwald/PSCommandShortener/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `psshort config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage psshort configuration",
		Long: `Manage psshort configuration.

Configuration is stored in:
  - Linux: ~/.config/psshort/config.toml
  - macOS: ~/Library/Application Support/psshort/config.toml
  - Windows: %APPDATA%\psshort\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	cfg := loadedConfig

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	cfgPath, err := config.ConfigFilePath()
	if err == nil && fileExistsCheck(cfgPath) {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("registry.path"), SuccessStyle.Render(orNone(cfg.Registry.Path)))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("registry.include_builtin"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.Registry.IncludeBuiltin)))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("output.crlf_newlines"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.Output.CRLFNewlines)))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("output.collapse_spaces"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.Output.CollapseSpaces)))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(cfg.UI.ColorScheme)))

	return nil
}

func showConfigPath(cmd *cobra.Command) error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return &ExitError{Code: 1, Err: issue.WrapWithOperation(err, "resolve configuration path")}
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// fileExistsCheck reports whether path exists and is a regular file.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
