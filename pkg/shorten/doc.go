// SPDX-License-Identifier: MPL-2.0

// Package shorten rewrites a block of shell-style command invocations into a
// shorter, functionally equivalent form: each command's canonical name is
// substituted with its shortest registered alias, and each named parameter
// with its shortest alias or shortest unambiguous prefix. Statement order,
// statement separators (newline, pipe, semicolon) and literal argument text
// are preserved.
//
// The pipeline has five stages, data flowing strictly forward:
//
//  1. the segmenter splits the raw text into statement fragments and the
//     verbatim delimiter runs between them;
//  2. the structure extractor obtains, via the mvdan.cc/sh syntax parser, the
//     command token and parameter tokens of every invocation in source order,
//     together with their source spans;
//  3. the resolver matches tokens against an injected registry.Registry;
//  4. the minimizer picks each substitute (shortest alias, shortest unique
//     prefix, or the implied get-verb shorthand);
//  5. the rewriter applies the substitutions span-by-span and reassembles the
//     fragments with their original delimiters, then normalizes newlines to
//     CRLF and collapses runs of spaces.
//
// Replacements are span-based: only the exact token reported by the
// structural parse is rewritten, never an unrelated occurrence of the same
// substring elsewhere on the line.
//
// A Shortener holds no mutable state across invocations and is safe for
// concurrent use as long as its Registry is.
package shorten
