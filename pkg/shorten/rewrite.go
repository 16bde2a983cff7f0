// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"slices"
	"strings"
)

// reassemble applies the replacements to their statement fragments and joins
// the result with the original delimiter runs, in scan order. Every
// replacement span must fall entirely inside one fragment; a span that
// crosses a fragment boundary, lands in a delimiter, or is left over at the
// end means the structural parse and the segmentation disagree about the
// script, and the whole call fails rather than emitting a corrupted rewrite.
func reassemble(script string, seg segmentation, repls []replacement, invocations int) (string, error) {
	repls = slices.Clone(repls)
	slices.SortFunc(repls, func(a, b replacement) int { return a.span.start - b.span.start })

	var out strings.Builder
	out.Grow(len(script))

	next := 0
	for _, tok := range seg.tokens {
		if tok.isDelimiter {
			out.WriteString(tok.text)
			continue
		}
		fragEnd := tok.start + len(tok.text)
		cursor := tok.start
		for next < len(repls) && repls[next].span.start < fragEnd {
			r := repls[next]
			if r.span.start < cursor || r.span.end > fragEnd {
				return "", &AlignmentError{Fragments: seg.fragments, Invocations: invocations}
			}
			out.WriteString(script[cursor:r.span.start])
			out.WriteString(r.text)
			cursor = r.span.end
			next++
		}
		out.WriteString(script[cursor:fragEnd])
	}
	if next < len(repls) {
		return "", &AlignmentError{Fragments: seg.fragments, Invocations: invocations}
	}
	return out.String(), nil
}

// normalizeNewlines rewrites every bare newline into a carriage-return +
// newline pair. Newlines already preceded by a carriage return are left as
// they are.
func normalizeNewlines(s string) string {
	var out strings.Builder
	out.Grow(len(s) + strings.Count(s, "\n"))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' && (i == 0 || s[i-1] != '\r') {
			out.WriteString("\r\n")
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

// collapseSpaces reduces every run of two or more space characters to a
// single space. Tabs and newlines are untouched.
func collapseSpaces(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	spaces := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			spaces++
			continue
		}
		if spaces > 0 {
			out.WriteByte(' ')
			spaces = 0
		}
		out.WriteByte(s[i])
	}
	if spaces > 0 {
		out.WriteByte(' ')
	}
	return out.String()
}
