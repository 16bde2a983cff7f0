// SPDX-License-Identifier: MPL-2.0

package shorten

import "strings"

type (
	// segToken is one piece of the script in scan order: either a statement
	// fragment or a verbatim delimiter run.
	segToken struct {
		text        string
		start       int // absolute byte offset into the script
		isDelimiter bool
	}

	// segmentation is the segmenter's view of the script: the scan-order token
	// list plus the count of surviving (non-blank) statement fragments.
	segmentation struct {
		tokens    []segToken
		fragments int
	}
)

// isDelimiterAt reports whether the byte at i belongs to a delimiter run.
// Newline, pipe and semicolon are delimiters; a carriage return counts only
// when it is glued to a following newline, so a stray CR inside a statement
// stays part of the fragment.
func isDelimiterAt(script string, i int) bool {
	switch script[i] {
	case '\n', '|', ';':
		return true
	case '\r':
		return i+1 < len(script) && script[i+1] == '\n'
	}
	return false
}

// segment splits the script at every newline, pipe and semicolon. Maximal runs
// of delimiter characters are kept verbatim as single delimiter tokens; the
// text between runs becomes statement fragments with their original offsets.
// Whitespace-only fragments are discarded outright, not kept as placeholders:
// the delimiter runs around them still appear, in scan order, so reassembly
// reproduces every separator the input had.
func segment(script string) segmentation {
	var seg segmentation

	flushFragment := func(start, end int) {
		if start >= end {
			return
		}
		text := script[start:end]
		if strings.TrimSpace(text) == "" {
			return
		}
		seg.tokens = append(seg.tokens, segToken{text: text, start: start})
		seg.fragments++
	}

	fragStart := 0
	i := 0
	for i < len(script) {
		if !isDelimiterAt(script, i) {
			i++
			continue
		}
		flushFragment(fragStart, i)
		runStart := i
		for i < len(script) && isDelimiterAt(script, i) {
			i++
		}
		seg.tokens = append(seg.tokens, segToken{
			text:        script[runStart:i],
			start:       runStart,
			isDelimiter: true,
		})
		fragStart = i
	}
	flushFragment(fragStart, len(script))

	return seg
}
