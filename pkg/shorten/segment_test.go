// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"testing"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		script         string
		wantFragments  []string
		wantDelimiters []string
	}{
		{
			name:           "single statement",
			script:         "Get-Process",
			wantFragments:  []string{"Get-Process"},
			wantDelimiters: nil,
		},
		{
			name:           "pipe",
			script:         "Get-Process | Where-Object x",
			wantFragments:  []string{"Get-Process ", " Where-Object x"},
			wantDelimiters: []string{"|"},
		},
		{
			name:           "semicolon and newline",
			script:         "a; b\nc",
			wantFragments:  []string{"a", " b", "c"},
			wantDelimiters: []string{";", "\n"},
		},
		{
			name:           "delimiter run kept verbatim",
			script:         "a\n\n\nb",
			wantFragments:  []string{"a", "b"},
			wantDelimiters: []string{"\n\n\n"},
		},
		{
			name:           "crlf belongs to the delimiter",
			script:         "a\r\nb",
			wantFragments:  []string{"a", "b"},
			wantDelimiters: []string{"\r\n"},
		},
		{
			name:           "blank fragment between delimiters is discarded",
			script:         "a; \nb",
			wantFragments:  []string{"a", "b"},
			wantDelimiters: []string{";", "\n"},
		},
		{
			name:           "trailing delimiter",
			script:         "a\n",
			wantFragments:  []string{"a"},
			wantDelimiters: []string{"\n"},
		},
		{
			name:           "leading delimiter",
			script:         "\na",
			wantFragments:  []string{"a"},
			wantDelimiters: []string{"\n"},
		},
		{
			name:           "stray carriage return stays in the fragment",
			script:         "a\rb",
			wantFragments:  []string{"a\rb"},
			wantDelimiters: nil,
		},
		{
			name:           "empty script",
			script:         "",
			wantFragments:  nil,
			wantDelimiters: nil,
		},
		{
			name:           "whitespace only script",
			script:         "   ",
			wantFragments:  nil,
			wantDelimiters: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seg := segment(tt.script)

			var fragments, delimiters []string
			for _, tok := range seg.tokens {
				if tok.isDelimiter {
					delimiters = append(delimiters, tok.text)
				} else {
					fragments = append(fragments, tok.text)
				}
			}

			if len(fragments) != len(tt.wantFragments) || seg.fragments != len(tt.wantFragments) {
				t.Fatalf("fragments = %q (count %d), want %q", fragments, seg.fragments, tt.wantFragments)
			}
			for i := range fragments {
				if fragments[i] != tt.wantFragments[i] {
					t.Errorf("fragment[%d] = %q, want %q", i, fragments[i], tt.wantFragments[i])
				}
			}
			if len(delimiters) != len(tt.wantDelimiters) {
				t.Fatalf("delimiters = %q, want %q", delimiters, tt.wantDelimiters)
			}
			for i := range delimiters {
				if delimiters[i] != tt.wantDelimiters[i] {
					t.Errorf("delimiter[%d] = %q, want %q", i, delimiters[i], tt.wantDelimiters[i])
				}
			}
		})
	}
}

func TestSegment_FragmentOffsets(t *testing.T) {
	t.Parallel()

	script := "abc | def"
	seg := segment(script)
	for _, tok := range seg.tokens {
		if got := script[tok.start : tok.start+len(tok.text)]; got != tok.text {
			t.Errorf("token text %q does not match script at offset %d (%q)", tok.text, tok.start, got)
		}
	}
}
