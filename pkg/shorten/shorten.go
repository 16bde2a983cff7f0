// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"github.com/jhochwald/PSCommandShortener/pkg/registry"
)

type (
	// Options controls the final normalization pass of the rewriter.
	Options struct {
		// CRLFNewlines rewrites bare newlines into carriage-return + newline
		// pairs in the output.
		CRLFNewlines bool
		// CollapseSpaces reduces runs of two or more spaces to a single space
		// in the output.
		CollapseSpaces bool
	}

	// Shortener runs the shortening pipeline against a fixed registry.
	// All intermediate state is local to one Shorten call; a Shortener is
	// safe for concurrent use as long as its Registry is.
	Shortener struct {
		registry registry.Registry
		opts     Options
	}
)

// DefaultOptions returns the normalization defaults: CRLF newlines and space
// collapsing both on.
func DefaultOptions() Options {
	return Options{CRLFNewlines: true, CollapseSpaces: true}
}

// New creates a Shortener over the given registry.
func New(reg registry.Registry, opts Options) *Shortener {
	return &Shortener{registry: reg, opts: opts}
}

// Shorten rewrites the script into its shortest known equivalent form.
//
// It fails with a ParseError when the script cannot be structurally parsed
// and with an AlignmentError when the delimiter-based segmentation and the
// structural parse disagree; both are fatal, with no partial output. Unknown
// commands and unresolvable parameter tokens are not errors: those statements
// and tokens pass through unchanged.
func (s *Shortener) Shorten(script string) (string, error) {
	seg := segment(script)
	invs, err := extractInvocations(script)
	if err != nil {
		return "", err
	}
	if seg.fragments != len(invs) {
		return "", &AlignmentError{Fragments: seg.fragments, Invocations: len(invs)}
	}

	var repls []replacement
	for _, inv := range invs {
		repls = append(repls, s.resolveStatement(inv)...)
	}

	out, err := reassemble(script, seg, repls, len(invs))
	if err != nil {
		return "", err
	}
	if s.opts.CRLFNewlines {
		out = normalizeNewlines(out)
	}
	if s.opts.CollapseSpaces {
		out = collapseSpaces(out)
	}
	return out, nil
}

// Shorten is the package-level convenience form with default normalization.
func Shorten(script string, reg registry.Registry) (string, error) {
	return New(reg, DefaultOptions()).Shorten(script)
}
