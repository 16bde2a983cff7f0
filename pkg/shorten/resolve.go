// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"slices"

	"github.com/jhochwald/PSCommandShortener/pkg/registry"
	"github.com/jhochwald/PSCommandShortener/pkg/types"
)

// replacement substitutes text for the half-open byte range [start, end) of
// the original script.
type replacement struct {
	span span
	text string
}

// resolveStatement resolves one invocation against the registry and returns
// the replacements to apply to its fragment. Every failure mode here is
// recovered in-line: an unknown command leaves the whole statement untouched
// (without a descriptor there are no declared parameters to match against),
// and an unresolvable parameter token simply produces no replacement.
func (s *Shortener) resolveStatement(inv invocation) []replacement {
	if inv.command.text == "" {
		return nil
	}

	desc, found := s.registry.ResolveCommand(inv.command.text)
	if !found {
		return nil
	}

	var repls []replacement
	if sub, ok := s.commandSubstitute(inv.command.text, desc); ok {
		repls = append(repls, replacement{span: inv.command.span, text: sub})
	}

	declared := s.registry.DeclaredParametersOf(desc.Canonical)
	for _, param := range inv.parameters {
		if sub, ok := parameterSubstitute(param, declared); ok {
			repls = append(repls, replacement{span: param.span, text: sub})
		}
	}
	return repls
}

// commandSubstitute picks the substitute for the command token, or reports
// none. A token that is itself a registered alias is already the shortest
// known form and stays as written. Substitutes that would not shrink the
// token are discarded: the rewrite must never grow the script.
func (s *Shortener) commandSubstitute(written string, desc *registry.CommandDescriptor) (string, bool) {
	if desc.IsAliasInvocation {
		return "", false
	}
	if alias, ok := shortestAlias(s.registry.ResolveAliasesOf(desc.Canonical)); ok {
		return shrinkOnly(string(alias), written)
	}
	if shorthand, ok := impliedCommandShorthand(desc.Canonical); ok {
		return shrinkOnly(shorthand, written)
	}
	return "", false
}

// parameterSubstitute matches one written parameter token (bare name, dash
// stripped) against the command's declared parameters and picks its
// substitute. Matching is a case-sensitive exact comparison against declared
// names and their aliases; when more than one declared parameter matches, the
// first in declaration order wins. The returned substitute carries the dash.
func parameterSubstitute(param token, declared []registry.ParameterDescriptor) (string, bool) {
	idx := slices.IndexFunc(declared, func(d registry.ParameterDescriptor) bool {
		return string(d.Name) == param.text || slices.Contains(d.Aliases, types.AliasName(param.text))
	})
	if idx < 0 {
		return "", false
	}

	var bare string
	if alias, ok := shortestAlias(declared[idx].Aliases); ok {
		bare = string(alias)
	} else {
		bare = shortestUniquePrefix(declared[idx].Name, declaredNames(declared))
	}
	return shrinkOnly("-"+bare, "-"+param.text)
}

func declaredNames(declared []registry.ParameterDescriptor) []types.ParameterName {
	names := make([]types.ParameterName, len(declared))
	for i, d := range declared {
		names[i] = d.Name
	}
	return names
}

// shrinkOnly accepts a substitute only when it is strictly shorter than the
// written token. Equal-length rewrites are pointless and longer ones would
// violate the contract that a shortened script never exceeds its input.
func shrinkOnly(substitute, written string) (string, bool) {
	if len(substitute) >= len(written) {
		return "", false
	}
	return substitute, true
}
