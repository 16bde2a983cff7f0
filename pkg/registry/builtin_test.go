// SPDX-License-Identifier: MPL-2.0

package registry

import "testing"

func TestBuiltin_CatalogIsValid(t *testing.T) {
	t.Parallel()

	// Builtin panics on a malformed catalog; constructing it here keeps the
	// catalog honest as entries are added.
	reg := Builtin()
	if reg.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}
	if len(reg.CanonicalNames()) != reg.Len() {
		t.Errorf("listing order has %d entries, registry has %d", len(reg.CanonicalNames()), reg.Len())
	}
}

func TestBuiltin_WellKnownLookups(t *testing.T) {
	t.Parallel()

	reg := Builtin()

	tests := []struct {
		lookup        string
		wantCanonical string
		wantViaAlias  bool
	}{
		{lookup: "Get-ChildItem", wantCanonical: "Get-ChildItem", wantViaAlias: false},
		{lookup: "ls", wantCanonical: "Get-ChildItem", wantViaAlias: true},
		{lookup: "dir", wantCanonical: "Get-ChildItem", wantViaAlias: true},
		{lookup: "?", wantCanonical: "Where-Object", wantViaAlias: true},
		{lookup: "%", wantCanonical: "ForEach-Object", wantViaAlias: true},
		{lookup: "ps", wantCanonical: "Get-Process", wantViaAlias: true},
		{lookup: "cd", wantCanonical: "Set-Location", wantViaAlias: true},
	}

	for _, tt := range tests {
		t.Run(tt.lookup, func(t *testing.T) {
			t.Parallel()
			desc, found := reg.ResolveCommand(tt.lookup)
			if !found {
				t.Fatalf("ResolveCommand(%q) not found", tt.lookup)
			}
			if string(desc.Canonical) != tt.wantCanonical {
				t.Errorf("Canonical = %q, want %q", desc.Canonical, tt.wantCanonical)
			}
			if desc.IsAliasInvocation != tt.wantViaAlias {
				t.Errorf("IsAliasInvocation = %v, want %v", desc.IsAliasInvocation, tt.wantViaAlias)
			}
		})
	}
}

func TestBuiltin_HiddenParameterAliases(t *testing.T) {
	t.Parallel()

	reg := Builtin()
	params := reg.DeclaredParametersOf("Get-ChildItem")

	var found bool
	for _, p := range params {
		if p.Name != "Hidden" {
			continue
		}
		found = true
		if len(p.Aliases) != 2 {
			t.Errorf("Hidden aliases = %v, want two entries", p.Aliases)
		}
	}
	if !found {
		t.Error("Get-ChildItem does not declare Hidden")
	}
}
