// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/jhochwald/PSCommandShortener/internal/issue"
	"github.com/jhochwald/PSCommandShortener/pkg/registry"
	"github.com/jhochwald/PSCommandShortener/pkg/types"

	"github.com/spf13/cobra"
)

// newRegistryCommand creates the `psshort registry` command tree.
func newRegistryCommand() *cobra.Command {
	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the command registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var (
		registryPath string
		noBuiltin    bool
	)

	listCmd := &cobra.Command{
		Use:   "list [name]",
		Short: "List known commands with their aliases and parameters",
		Long: `List known commands with their aliases and parameters.

With a name argument, only that command is shown. The name may be a
canonical command name or any of its aliases.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := shortenOptions{registryPath: registryPath, noBuiltin: noBuiltin}
			logger := newDiagnosticLogger(cmd.ErrOrStderr())
			reg, err := loadRegistry(opts, logger)
			if err != nil {
				renderIssue(cmd.ErrOrStderr(), issue.RegistryLoadFailedId)
				return &ExitError{Code: 1, Err: err}
			}
			if len(args) == 1 {
				return printCommand(cmd, reg, args[0])
			}
			printRegistry(cmd, reg)
			return nil
		},
	}
	listCmd.Flags().StringVar(&registryPath, "registry", "", "registry file with additional command definitions (.cue or .toml)")
	listCmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "ignore the builtin command catalog")

	registryCmd.AddCommand(listCmd)
	return registryCmd
}

// printCommand prints a single registry entry looked up by canonical name
// or alias.
func printCommand(cmd *cobra.Command, reg *registry.Static, name string) error {
	desc, found := reg.ResolveCommand(name)
	if !found {
		return &ExitError{Code: 1, Err: fmt.Errorf("unknown command %q", name)}
	}
	printEntry(cmd, reg, desc.Canonical)
	return nil
}

func printRegistry(cmd *cobra.Command, reg *registry.Static) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Known Commands"))
	fmt.Fprintln(out)

	for _, canonical := range reg.CanonicalNames() {
		printEntry(cmd, reg, canonical)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render(fmt.Sprintf("%d commands", reg.Len())))
}

func printEntry(cmd *cobra.Command, reg *registry.Static, canonical types.CanonicalName) {
	out := cmd.OutOrStdout()
	aliases := reg.ResolveAliasesOf(canonical)
	params := reg.DeclaredParametersOf(canonical)

	line := CmdStyle.Render(string(canonical))
	if len(aliases) > 0 {
		names := make([]string, len(aliases))
		for i, a := range aliases {
			names[i] = string(a)
		}
		line += SubtitleStyle.Render("  aliases: ") + strings.Join(names, ", ")
	}
	fmt.Fprintln(out, line)

	for _, p := range params {
		pline := "    -" + string(p.Name)
		if len(p.Aliases) > 0 {
			names := make([]string, len(p.Aliases))
			for i, a := range p.Aliases {
				names[i] = string(a)
			}
			pline += SubtitleStyle.Render("  aliases: ") + strings.Join(names, ", ")
		}
		fmt.Fprintln(out, VerboseStyle.Render(pline))
	}
}
