// SPDX-License-Identifier: MPL-2.0

package shorten

import (
	"strings"

	"github.com/jhochwald/PSCommandShortener/pkg/types"
)

// getVerbPrefix is the conventional retrieval prefix commands may omit: a
// command named "Get-Date" answers to plain "Date" even without a registered
// alias.
const getVerbPrefix = "Get-"

// shortestAlias picks the shortest alias by character length, ties broken by
// the lexicographically first spelling. The second return is false for an
// empty alias set.
func shortestAlias(aliases []types.AliasName) (types.AliasName, bool) {
	if len(aliases) == 0 {
		return "", false
	}
	best := aliases[0]
	for _, a := range aliases[1:] {
		if len(a) < len(best) || (len(a) == len(best) && a < best) {
			best = a
		}
	}
	return best, true
}

// shortestUniquePrefix grows a prefix of name character by character until
// exactly one of the sibling names starts with it. The name itself is one of
// the siblings, so a one-element set yields a single character. If no prefix
// ever becomes unique (an identical name appears twice in the set) the full
// name is returned.
func shortestUniquePrefix(name types.ParameterName, siblings []types.ParameterName) string {
	s := string(name)
	for length := 1; length <= len(s); length++ {
		prefix := s[:length]
		matches := 0
		for _, sib := range siblings {
			if strings.HasPrefix(string(sib), prefix) {
				matches++
			}
		}
		if matches == 1 {
			return prefix
		}
	}
	return s
}

// impliedCommandShorthand derives the get-verb shorthand of a canonical name:
// the name with the retrieval prefix removed. It applies only when the prefix
// leaves something behind.
func impliedCommandShorthand(canonical types.CanonicalName) (string, bool) {
	s := string(canonical)
	if !strings.HasPrefix(s, getVerbPrefix) || len(s) == len(getVerbPrefix) {
		return "", false
	}
	return s[len(getVerbPrefix):], true
}
