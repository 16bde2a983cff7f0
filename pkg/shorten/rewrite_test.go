// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"errors"
	"testing"
)

func TestReassemble(t *testing.T) {
	t.Parallel()

	script := "Get-Process | Where-Object x"
	seg := segment(script)
	repls := []replacement{
		{span: span{start: 0, end: 11}, text: "ps"},
		{span: span{start: 14, end: 26}, text: "?"},
	}

	got, err := reassemble(script, seg, repls, 2)
	if err != nil {
		t.Fatalf("reassemble() error = %v", err)
	}
	if want := "ps | ? x"; got != want {
		t.Errorf("reassemble() = %q, want %q", got, want)
	}
}

func TestReassemble_NoReplacementsRoundTrips(t *testing.T) {
	t.Parallel()

	script := "a; b\nc"
	got, err := reassemble(script, segment(script), nil, 3)
	if err != nil {
		t.Fatalf("reassemble() error = %v", err)
	}
	if got != script {
		t.Errorf("reassemble() = %q, want input unchanged %q", got, script)
	}
}

func TestReassemble_SpanOutsideFragmentFails(t *testing.T) {
	t.Parallel()

	script := "ab|cd"
	tests := []struct {
		name string
		repl replacement
	}{
		{name: "span covers the delimiter", repl: replacement{span: span{start: 1, end: 4}, text: "x"}},
		{name: "span beyond the script", repl: replacement{span: span{start: 40, end: 44}, text: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := reassemble(script, segment(script), []replacement{tt.repl}, 2)
			if !errors.Is(err, ErrAlignment) {
				t.Errorf("reassemble() error = %v, want ErrAlignment", err)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare newline", in: "a\nb", want: "a\r\nb"},
		{name: "existing crlf untouched", in: "a\r\nb", want: "a\r\nb"},
		{name: "mixed", in: "a\nb\r\nc\n", want: "a\r\nb\r\nc\r\n"},
		{name: "leading newline", in: "\na", want: "\r\na"},
		{name: "no newlines", in: "abc", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeNewlines(tt.in); got != tt.want {
				t.Errorf("normalizeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "double space", in: "a  b", want: "a b"},
		{name: "long run", in: "a      b", want: "a b"},
		{name: "single spaces untouched", in: "a b c", want: "a b c"},
		{name: "tabs untouched", in: "a\t\tb", want: "a\t\tb"},
		{name: "trailing run", in: "a  ", want: "a "},
		{name: "newlines untouched", in: "a \n b", want: "a \n b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := collapseSpaces(tt.in); got != tt.want {
				t.Errorf("collapseSpaces(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
