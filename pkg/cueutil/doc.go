// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the 3-step CUE parsing pattern used for
// schema-validated input files:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed registry_schema.cue
//	var schema string
//
//	result, err := cueutil.ParseAndDecodeString[File](
//	    schema,
//	    userFileBytes,
//	    "#File",
//	    cueutil.WithFilename("commands.cue"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
//	return result.Value, nil
package cueutil
