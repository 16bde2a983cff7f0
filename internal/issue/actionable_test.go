// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "shorten script"},
			want: "failed to shorten script",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load registry file", Resource: "./registry.cue"},
			want: "failed to load registry file: ./registry.cue",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load registry file",
				Resource:  "./registry.cue",
				Cause:     errors.New("no such file"),
			},
			want: "failed to load registry file: ./registry.cue: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := NewErrorContext().
		WithOperation("load registry file").
		WithResource("./registry.cue").
		WithSuggestion("Verify the file path is correct").
		WithSuggestion("Registry files must end in .cue or .toml").
		Wrap(cause).
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "failed to load registry file") {
		t.Errorf("Format(false) missing operation: %q", got)
	}
	if !strings.Contains(got, "• Verify the file path is correct") {
		t.Errorf("Format(false) missing first suggestion: %q", got)
	}
	if strings.Contains(got, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", got)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "1. no such file") {
		t.Errorf("Format(true) missing chained cause: %q", verbose)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "shorten script")
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not find the wrapped cause")
	}
}

func TestWrapHelpers_NilCause(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "x"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
	if got := WrapWithContext(nil, "x", "y"); got != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", got)
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	bare := &ActionableError{Operation: "x"}
	if bare.HasSuggestions() {
		t.Error("HasSuggestions() = true for an error without suggestions")
	}
	with := NewErrorContext().WithSuggestions("a", "b").Build()
	if !with.HasSuggestions() {
		t.Error("HasSuggestions() = false after WithSuggestions")
	}
}
