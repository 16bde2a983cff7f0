// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jhochwald/PSCommandShortener/pkg/types"
)

// ErrInvalidDefinition is the sentinel error wrapped by InvalidDefinitionError.
var ErrInvalidDefinition = errors.New("invalid command definition")

type (
	// ParameterDescriptor describes one declared parameter of a command:
	// its name (stored without the leading dash) and its registered aliases,
	// possibly empty.
	ParameterDescriptor struct {
		Name    types.ParameterName
		Aliases []types.AliasName
	}

	// CommandDescriptor is the result of resolving a command token.
	CommandDescriptor struct {
		// Canonical is the primary registered name of the command.
		Canonical types.CanonicalName
		// IsAliasInvocation is true when the token the descriptor was resolved
		// from is itself a registered alias rather than the canonical name.
		IsAliasInvocation bool
		// Aliases are all aliases registered for the canonical command.
		Aliases []types.AliasName
		// Parameters is the union of the declared parameters across all of the
		// command's parameter sets, deduplicated by name, in declaration order.
		Parameters []ParameterDescriptor
	}

	// Registry answers command and alias lookups for the shortening pipeline.
	// Implementations must be safe for concurrent readers and must return
	// stable, deterministic orderings: the pipeline's tie-breaks depend on
	// declaration order being reproducible.
	Registry interface {
		// ResolveCommand looks up a command by canonical name or alias.
		// The second return is false when the name is unknown.
		ResolveCommand(name string) (*CommandDescriptor, bool)

		// ResolveAliasesOf returns all aliases registered for a canonical
		// command, empty if none or if the command is unknown.
		ResolveAliasesOf(canonical types.CanonicalName) []types.AliasName

		// DeclaredParametersOf returns the command's declared parameters,
		// deduplicated by name, in declaration order.
		DeclaredParametersOf(canonical types.CanonicalName) []ParameterDescriptor
	}

	// Definition is the authoring form of one command entry, as written in the
	// builtin catalog or decoded from a registry file.
	Definition struct {
		Name       string                `json:"name" toml:"name"`
		Aliases    []string              `json:"aliases,omitempty" toml:"aliases,omitempty"`
		Parameters []ParameterDefinition `json:"parameters,omitempty" toml:"parameters,omitempty"`
	}

	// ParameterDefinition is the authoring form of one declared parameter.
	ParameterDefinition struct {
		Name    string   `json:"name" toml:"name"`
		Aliases []string `json:"aliases,omitempty" toml:"aliases,omitempty"`
	}

	// InvalidDefinitionError is returned when a Definition fails validation.
	InvalidDefinitionError struct {
		Name   string
		Reason string
	}

	// Static is an in-memory Registry built from a list of Definitions.
	// Later definitions shadow earlier ones with the same canonical name,
	// which is how user registry files override the builtin catalog.
	Static struct {
		commands map[types.CanonicalName]*entry
		aliases  map[types.AliasName]types.CanonicalName
		order    []types.CanonicalName
	}

	entry struct {
		canonical  types.CanonicalName
		aliases    []types.AliasName
		parameters []ParameterDescriptor
	}
)

// Error implements the error interface for InvalidDefinitionError.
func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("invalid command definition %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidDefinition for errors.Is() compatibility.
func (e *InvalidDefinitionError) Unwrap() error { return ErrInvalidDefinition }

// Validate checks that the definition's names are all well-formed.
func (d Definition) Validate() error {
	if ok, _ := types.CanonicalName(d.Name).IsValid(); !ok {
		return &InvalidDefinitionError{Name: d.Name, Reason: "canonical name is malformed"}
	}
	for _, a := range d.Aliases {
		if ok, _ := types.AliasName(a).IsValid(); !ok {
			return &InvalidDefinitionError{Name: d.Name, Reason: fmt.Sprintf("alias %q is malformed", a)}
		}
	}
	for _, p := range d.Parameters {
		if ok, _ := types.ParameterName(p.Name).IsValid(); !ok {
			return &InvalidDefinitionError{Name: d.Name, Reason: fmt.Sprintf("parameter name %q is malformed", p.Name)}
		}
		for _, a := range p.Aliases {
			if ok, _ := types.AliasName(a).IsValid(); !ok {
				return &InvalidDefinitionError{Name: d.Name, Reason: fmt.Sprintf("parameter alias %q is malformed", a)}
			}
		}
	}
	return nil
}

// NewStatic builds a Static registry from definitions. Definitions are applied
// in order, last-wins by canonical name; the surviving declaration order is the
// order canonical names were first seen. Alias collisions across different
// commands resolve to the command applied last.
func NewStatic(defs []Definition) (*Static, error) {
	s := &Static{
		commands: make(map[types.CanonicalName]*entry, len(defs)),
		aliases:  make(map[types.AliasName]types.CanonicalName),
	}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		canonical := types.CanonicalName(def.Name)
		if prev, shadowed := s.commands[canonical]; shadowed {
			for _, a := range prev.aliases {
				if s.aliases[a] == canonical {
					delete(s.aliases, a)
				}
			}
		} else {
			s.order = append(s.order, canonical)
		}
		e := &entry{canonical: canonical}
		for _, a := range def.Aliases {
			alias := types.AliasName(a)
			if !slices.Contains(e.aliases, alias) {
				e.aliases = append(e.aliases, alias)
			}
			s.aliases[alias] = canonical
		}
		e.parameters = dedupeParameters(def.Parameters)
		s.commands[canonical] = e
	}
	return s, nil
}

// dedupeParameters converts parameter definitions to descriptors, keeping the
// first occurrence of each name. Declaration order is preserved; it is the
// documented tie-break when a token matches more than one declared parameter.
func dedupeParameters(defs []ParameterDefinition) []ParameterDescriptor {
	seen := make(map[types.ParameterName]struct{}, len(defs))
	out := make([]ParameterDescriptor, 0, len(defs))
	for _, p := range defs {
		name := types.ParameterName(p.Name)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		d := ParameterDescriptor{Name: name}
		for _, a := range p.Aliases {
			d.Aliases = append(d.Aliases, types.AliasName(a))
		}
		out = append(out, d)
	}
	return out
}

// ResolveCommand implements Registry.
func (s *Static) ResolveCommand(name string) (*CommandDescriptor, bool) {
	if e, ok := s.commands[types.CanonicalName(name)]; ok {
		return s.describe(e, false), true
	}
	if canonical, ok := s.aliases[types.AliasName(name)]; ok {
		return s.describe(s.commands[canonical], true), true
	}
	return nil, false
}

// ResolveAliasesOf implements Registry.
func (s *Static) ResolveAliasesOf(canonical types.CanonicalName) []types.AliasName {
	e, ok := s.commands[canonical]
	if !ok {
		return nil
	}
	return slices.Clone(e.aliases)
}

// DeclaredParametersOf implements Registry.
func (s *Static) DeclaredParametersOf(canonical types.CanonicalName) []ParameterDescriptor {
	e, ok := s.commands[canonical]
	if !ok {
		return nil
	}
	return cloneParameters(e.parameters)
}

// CanonicalNames returns every registered canonical name in first-seen order.
// Used by the CLI's registry listing.
func (s *Static) CanonicalNames() []types.CanonicalName {
	return slices.Clone(s.order)
}

// Len returns the number of registered commands.
func (s *Static) Len() int { return len(s.commands) }

func (s *Static) describe(e *entry, viaAlias bool) *CommandDescriptor {
	return &CommandDescriptor{
		Canonical:         e.canonical,
		IsAliasInvocation: viaAlias,
		Aliases:           slices.Clone(e.aliases),
		Parameters:        cloneParameters(e.parameters),
	}
}

func cloneParameters(in []ParameterDescriptor) []ParameterDescriptor {
	out := make([]ParameterDescriptor, len(in))
	for i, p := range in {
		out[i] = ParameterDescriptor{Name: p.Name, Aliases: slices.Clone(p.Aliases)}
	}
	return out
}

var _ Registry = (*Static)(nil)
