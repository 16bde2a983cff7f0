// SPDX-License-Identifier: MPL-2.0

// Package registry models the command/alias catalog the shortener resolves
// script tokens against.
//
// The Registry interface is an explicit injected dependency of the shortening
// pipeline: given a command name it answers with zero or one CommandDescriptor,
// and per canonical command it exposes the registered aliases and the declared
// parameters (union across parameter sets, deduplicated by name, in stable
// declaration order).
//
// Two sources feed a registry: the builtin PowerShell-style catalog (Builtin),
// and user-supplied registry files in CUE (schema-validated) or TOML format
// (LoadFile). Definitions merge last-wins by canonical name.
package registry
