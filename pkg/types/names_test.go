// SPDX-License-Identifier: MPL-2.0

package types_test

import (
	"errors"
	"testing"

	"github.com/jhochwald/PSCommandShortener/pkg/types"
)

func TestCanonicalName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value types.CanonicalName
		want  bool
	}{
		{name: "typical verb-noun name", value: "Get-ChildItem", want: true},
		{name: "single word", value: "where", want: true},
		{name: "empty", value: "", want: false},
		{name: "whitespace only", value: "   ", want: false},
		{name: "embedded space", value: "Get ChildItem", want: false},
		{name: "embedded pipe", value: "Get|Item", want: false},
		{name: "embedded semicolon", value: "Get;Item", want: false},
		{name: "embedded newline", value: "Get\nItem", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, errs := tt.value.IsValid()
			if got != tt.want {
				t.Errorf("CanonicalName(%q).IsValid() = %v, want %v", tt.value, got, tt.want)
			}
			if !got {
				if len(errs) == 0 {
					t.Fatalf("CanonicalName(%q).IsValid() returned no errors for invalid value", tt.value)
				}
				if !errors.Is(errs[0], types.ErrInvalidCanonicalName) {
					t.Errorf("error does not wrap ErrInvalidCanonicalName: %v", errs[0])
				}
			}
		})
	}
}

func TestAliasName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value types.AliasName
		want  bool
	}{
		{name: "short alias", value: "gci", want: true},
		{name: "question mark alias", value: "?", want: true},
		{name: "percent alias", value: "%", want: true},
		{name: "empty", value: "", want: false},
		{name: "embedded space", value: "g ci", want: false},
		{name: "embedded semicolon", value: "g;ci", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, errs := tt.value.IsValid()
			if got != tt.want {
				t.Errorf("AliasName(%q).IsValid() = %v, want %v", tt.value, got, tt.want)
			}
			if !got && len(errs) > 0 && !errors.Is(errs[0], types.ErrInvalidAliasName) {
				t.Errorf("error does not wrap ErrInvalidAliasName: %v", errs[0])
			}
		})
	}
}

func TestParameterName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value types.ParameterName
		want  bool
	}{
		{name: "plain name", value: "Hidden", want: true},
		{name: "mixed case", value: "LiteralPath", want: true},
		{name: "leading dash rejected", value: "-Hidden", want: false},
		{name: "empty", value: "", want: false},
		{name: "whitespace only", value: " ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, errs := tt.value.IsValid()
			if got != tt.want {
				t.Errorf("ParameterName(%q).IsValid() = %v, want %v", tt.value, got, tt.want)
			}
			if !got && len(errs) > 0 && !errors.Is(errs[0], types.ErrInvalidParameterName) {
				t.Errorf("error does not wrap ErrInvalidParameterName: %v", errs[0])
			}
		})
	}
}

func TestNames_String(t *testing.T) {
	t.Parallel()

	if got := types.CanonicalName("Get-Process").String(); got != "Get-Process" {
		t.Errorf("CanonicalName.String() = %q, want %q", got, "Get-Process")
	}
	if got := types.AliasName("gps").String(); got != "gps" {
		t.Errorf("AliasName.String() = %q, want %q", got, "gps")
	}
	if got := types.ParameterName("Recurse").String(); got != "Recurse" {
		t.Errorf("ParameterName.String() = %q, want %q", got, "Recurse")
	}
}
