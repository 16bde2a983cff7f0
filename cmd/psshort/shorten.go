// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jhochwald/PSCommandShortener/internal/issue"
	"github.com/jhochwald/PSCommandShortener/pkg/registry"
	"github.com/jhochwald/PSCommandShortener/pkg/shorten"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// shortenOptions holds the flag values for the shorten command.
type shortenOptions struct {
	inPlace      bool
	registryPath string
	noBuiltin    bool
	stats        bool
}

// newShortenCommand creates the `psshort shorten` command.
func newShortenCommand() *cobra.Command {
	opts := &shortenOptions{}

	shortenCmd := &cobra.Command{
		Use:   "shorten [file]",
		Short: "Shorten a PowerShell script",
		Long: `Shorten a PowerShell script.

Reads the script from the given file, or from stdin when no file is
given, and prints the shortened form to stdout. With --in-place the
file is rewritten instead.

Commands are replaced by their shortest registered alias and parameters
by their shortest unique prefix. Statements whose command the registry
does not know are passed through byte for byte.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runShorten(cmd, path, *opts)
		},
	}

	shortenCmd.Flags().BoolVarP(&opts.inPlace, "in-place", "w", false, "rewrite the input file instead of printing to stdout")
	shortenCmd.Flags().StringVar(&opts.registryPath, "registry", "", "registry file with additional command definitions (.cue or .toml)")
	shortenCmd.Flags().BoolVar(&opts.noBuiltin, "no-builtin", false, "ignore the builtin command catalog")
	shortenCmd.Flags().BoolVar(&opts.stats, "stats", false, "print size statistics to stderr")

	return shortenCmd
}

func runShorten(cmd *cobra.Command, path string, opts shortenOptions) error {
	if opts.inPlace && path == "" {
		return fmt.Errorf("--in-place requires a file argument")
	}

	logger := newDiagnosticLogger(cmd.ErrOrStderr())

	reg, err := loadRegistry(opts, logger)
	if err != nil {
		renderIssue(cmd.ErrOrStderr(), issue.RegistryLoadFailedId)
		return &ExitError{Code: 1, Err: err}
	}

	src, err := readScript(cmd.InOrStdin(), path)
	if err != nil {
		return &ExitError{Code: 1, Err: issue.WrapWithContext(err, "read script", path)}
	}

	shortener := shorten.New(reg, shorten.Options{
		CRLFNewlines:   loadedConfig.Output.CRLFNewlines,
		CollapseSpaces: loadedConfig.Output.CollapseSpaces,
	})

	out, err := shortener.Shorten(string(src))
	if err != nil {
		switch {
		case errors.Is(err, shorten.ErrParse):
			renderIssue(cmd.ErrOrStderr(), issue.ScriptParseFailedId)
		case errors.Is(err, shorten.ErrAlignment):
			renderIssue(cmd.ErrOrStderr(), issue.StatementAlignmentId)
		}
		return &ExitError{Code: 1, Err: issue.WrapWithOperation(err, "shorten script")}
	}

	if opts.stats {
		fmt.Fprintln(cmd.ErrOrStderr(), statsLine(len(src), len(out)))
	}

	if opts.inPlace {
		if err := writeInPlace(path, []byte(out)); err != nil {
			return &ExitError{Code: 1, Err: issue.WrapWithContext(err, "write shortened script", path)}
		}
		logger.Debug("rewrote file in place", "path", path, "bytes", len(out))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// loadRegistry resolves the registry the shorten command runs against:
// the --registry flag wins over the configured path, and the builtin
// catalog is included unless disabled by flag or config.
func loadRegistry(opts shortenOptions, logger *log.Logger) (*registry.Static, error) {
	regPath := opts.registryPath
	if regPath == "" {
		regPath = loadedConfig.Registry.Path
	}
	includeBuiltin := loadedConfig.Registry.IncludeBuiltin && !opts.noBuiltin

	reg, err := registry.Load(regPath, includeBuiltin)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load command registry").
			WithResource(regPath).
			WithSuggestion("Check the file against 'psshort registry list' output format").
			WithSuggestion("Registry files must use the .cue or .toml extension").
			Wrap(err).
			Build()
	}

	logger.Debug("registry loaded",
		"commands", reg.Len(),
		"builtin", includeBuiltin,
		"file", regPath)
	return reg, nil
}

// readScript reads the input script from path, or from in when path is empty.
func readScript(in io.Reader, path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(in)
	}
	return os.ReadFile(path)
}

// writeInPlace replaces the file contents, keeping its permission bits.
func writeInPlace(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}

func statsLine(original, shortened int) string {
	saved := original - shortened
	pct := 0.0
	if original > 0 {
		pct = float64(saved) / float64(original) * 100
	}
	return VerboseStyle.Render(fmt.Sprintf("%d bytes in, %d bytes out (%d saved, %.1f%%)",
		original, shortened, saved, pct))
}

// renderIssue prints the styled markdown card for an issue to w.
// Rendering failures are swallowed: the ActionableError the caller
// returns still carries the underlying cause.
func renderIssue(w io.Writer, id issue.Id) {
	rendered, err := issue.Get(id).Render(string(loadedConfig.UI.ColorScheme))
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// newDiagnosticLogger builds the logger for verbose diagnostics. At the
// default level only warnings and errors are shown.
func newDiagnosticLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "psshort",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
