// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCanonicalName is the sentinel error wrapped by InvalidCanonicalNameError.
	ErrInvalidCanonicalName = errors.New("invalid canonical name")
	// ErrInvalidAliasName is the sentinel error wrapped by InvalidAliasNameError.
	ErrInvalidAliasName = errors.New("invalid alias name")
	// ErrInvalidParameterName is the sentinel error wrapped by InvalidParameterNameError.
	ErrInvalidParameterName = errors.New("invalid parameter name")
)

type (
	// CanonicalName is the primary, non-alias identifier of a command as stored
	// in the registry (e.g. "Get-ChildItem"). A valid name is non-empty, not
	// whitespace-only, and contains no whitespace or statement delimiters.
	CanonicalName string

	// AliasName is an alternate, usually shorter, name registered for a command
	// or parameter (e.g. "gci", "h"). Same shape constraints as CanonicalName.
	AliasName string

	// ParameterName is the declared name of a command parameter, stored without
	// the leading dash scripts use to invoke it (e.g. "Hidden", not "-Hidden").
	ParameterName string

	// InvalidCanonicalNameError is returned when a CanonicalName is malformed.
	InvalidCanonicalNameError struct {
		Value CanonicalName
	}

	// InvalidAliasNameError is returned when an AliasName is malformed.
	InvalidAliasNameError struct {
		Value AliasName
	}

	// InvalidParameterNameError is returned when a ParameterName is malformed.
	InvalidParameterNameError struct {
		Value ParameterName
	}
)

// nameIsWellFormed reports whether a registry identifier is usable: non-empty
// and free of whitespace and the characters the segmenter treats as delimiters.
// The pipe exception: "|" never appears in a well-formed name, but "?" and "%"
// are legitimate aliases, so only structural characters are rejected.
func nameIsWellFormed(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n|;")
}

// String returns the string representation of the CanonicalName.
func (n CanonicalName) String() string { return string(n) }

// IsValid returns whether the CanonicalName is valid.
func (n CanonicalName) IsValid() (bool, []error) {
	if !nameIsWellFormed(string(n)) {
		return false, []error{&InvalidCanonicalNameError{Value: n}}
	}
	return true, nil
}

// String returns the string representation of the AliasName.
func (a AliasName) String() string { return string(a) }

// IsValid returns whether the AliasName is valid.
func (a AliasName) IsValid() (bool, []error) {
	if !nameIsWellFormed(string(a)) {
		return false, []error{&InvalidAliasNameError{Value: a}}
	}
	return true, nil
}

// String returns the string representation of the ParameterName.
func (p ParameterName) String() string { return string(p) }

// IsValid returns whether the ParameterName is valid.
// Parameter names additionally must not carry the leading dash themselves.
func (p ParameterName) IsValid() (bool, []error) {
	if !nameIsWellFormed(string(p)) || strings.HasPrefix(string(p), "-") {
		return false, []error{&InvalidParameterNameError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCanonicalNameError.
func (e *InvalidCanonicalNameError) Error() string {
	return fmt.Sprintf("invalid canonical name %q: must be non-empty and contain no whitespace or delimiters", e.Value)
}

// Unwrap returns ErrInvalidCanonicalName for errors.Is() compatibility.
func (e *InvalidCanonicalNameError) Unwrap() error { return ErrInvalidCanonicalName }

// Error implements the error interface for InvalidAliasNameError.
func (e *InvalidAliasNameError) Error() string {
	return fmt.Sprintf("invalid alias name %q: must be non-empty and contain no whitespace or delimiters", e.Value)
}

// Unwrap returns ErrInvalidAliasName for errors.Is() compatibility.
func (e *InvalidAliasNameError) Unwrap() error { return ErrInvalidAliasName }

// Error implements the error interface for InvalidParameterNameError.
func (e *InvalidParameterNameError) Error() string {
	return fmt.Sprintf("invalid parameter name %q: must be non-empty, undashed, and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidParameterName for errors.Is() compatibility.
func (e *InvalidParameterNameError) Unwrap() error { return ErrInvalidParameterName }
