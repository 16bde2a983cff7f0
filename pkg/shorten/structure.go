// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"strings"
	"unicode"

	"mvdan.cc/sh/v3/syntax"
)

type (
	// span is a half-open byte range [start, end) into the script text.
	span struct {
		start, end int
	}

	// token is a literal token reported by the structural parse together with
	// its source span. For parameter tokens the text is the bare name, dash
	// already stripped, while the span still covers the dashed literal.
	token struct {
		text string
		span span
	}

	// invocation is one command invocation extracted from the syntax tree:
	// the command token and the parameter-name tokens among its arguments,
	// in usage order. Positional values contribute nothing. An invocation
	// with an empty command token is an assignment-only statement; it still
	// counts toward the alignment invariant.
	invocation struct {
		command    token
		parameters []token
	}
)

// isParameterToken reports whether an argument literal is written as a named
// parameter: a dash followed by a letter. Numbers ("-1") and bare operators
// stay positional.
func isParameterToken(lit string) bool {
	if len(lit) < 2 || lit[0] != '-' {
		return false
	}
	return unicode.IsLetter(rune(lit[1]))
}

func wordSpan(w *syntax.Word) span {
	return span{start: int(w.Pos().Offset()), end: int(w.End().Offset())}
}

// extractInvocations parses the script with the mvdan.cc/sh syntax parser and
// walks the tree depth-first, collecting every call expression in source
// order. Nested invocations (command substitutions, blocks passed as
// arguments) are visited too and contribute their own entries; whether they
// align with the delimiter-based segmentation is checked by the caller.
func extractInvocations(script string) ([]invocation, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	var invs []invocation
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok {
			return true
		}
		var inv invocation
		if len(call.Args) > 0 {
			cmdSpan := wordSpan(call.Args[0])
			inv.command = token{text: script[cmdSpan.start:cmdSpan.end], span: cmdSpan}
			for _, arg := range call.Args[1:] {
				argSpan := wordSpan(arg)
				lit := script[argSpan.start:argSpan.end]
				if !isParameterToken(lit) {
					continue
				}
				inv.parameters = append(inv.parameters, token{text: lit[1:], span: argSpan})
			}
		}
		invs = append(invs, inv)
		return true
	})
	return invs, nil
}
