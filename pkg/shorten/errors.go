// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the sentinel error matched by errors.Is for ParseError.
	ErrParse = errors.New("script cannot be structurally parsed")
	// ErrAlignment is the sentinel error matched by errors.Is for AlignmentError.
	ErrAlignment = errors.New("statement segmentation misaligned with structural parse")
)

type (
	// ParseError is returned when the script text cannot be structurally
	// decomposed. It is fatal: no partial output is produced.
	ParseError struct {
		Err error
	}

	// AlignmentError is returned when the delimiter-based segmentation and the
	// structural parse disagree about the statements of the script, either on
	// their count or on a token span falling outside its statement fragment.
	// The two views of the same text must agree exactly; truncating silently
	// would rewrite the wrong statements, so the whole call fails instead.
	AlignmentError struct {
		Fragments   int
		Invocations int
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse script structure: %v", e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse so callers can detect the kind without the type.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Error implements the error interface.
func (e *AlignmentError) Error() string {
	return fmt.Sprintf("segmentation found %d statements but the structural parse found %d command invocations",
		e.Fragments, e.Invocations)
}

// Is reports ErrAlignment so callers can detect the kind without the type.
func (e *AlignmentError) Is(target error) bool { return target == ErrAlignment }
