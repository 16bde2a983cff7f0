// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"strings"
	"testing"

	"github.com/jhochwald/PSCommandShortener/pkg/cueutil"
)

const testSchema = `
#Entry: {
	name:     string & !=""
	aliases?: [...string]
}

#Catalog: {
	entries: [...#Entry]
}
`

type testEntry struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

type testCatalog struct {
	Entries []testEntry `json:"entries"`
}

func TestParseAndDecodeString(t *testing.T) {
	t.Parallel()

	data := []byte(`
entries: [
	{name: "Get-Process", aliases: ["gps", "ps"]},
	{name: "Get-Date"},
]
`)

	result, err := cueutil.ParseAndDecodeString[testCatalog](testSchema, data, "#Catalog")
	if err != nil {
		t.Fatalf("ParseAndDecodeString() unexpected error: %v", err)
	}
	catalog := result.Value
	if len(catalog.Entries) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(catalog.Entries))
	}
	if catalog.Entries[0].Name != "Get-Process" {
		t.Errorf("Entries[0].Name = %q, want Get-Process", catalog.Entries[0].Name)
	}
	if len(catalog.Entries[0].Aliases) != 2 {
		t.Errorf("Entries[0].Aliases = %v, want 2 aliases", catalog.Entries[0].Aliases)
	}
}

func TestParseAndDecodeString_SchemaViolation(t *testing.T) {
	t.Parallel()

	data := []byte(`entries: [{name: ""}]`)

	_, err := cueutil.ParseAndDecodeString[testCatalog](testSchema, data, "#Catalog", cueutil.WithFilename("catalog.cue"))
	if err == nil {
		t.Fatal("ParseAndDecodeString() expected error for empty name")
	}
	if !strings.Contains(err.Error(), "catalog.cue") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestParseAndDecodeString_SyntaxError(t *testing.T) {
	t.Parallel()

	data := []byte(`entries: [`)

	_, err := cueutil.ParseAndDecodeString[testCatalog](testSchema, data, "#Catalog")
	if err == nil {
		t.Fatal("ParseAndDecodeString() expected error for malformed CUE")
	}
}

func TestParseAndDecodeString_UnknownSchemaPath(t *testing.T) {
	t.Parallel()

	_, err := cueutil.ParseAndDecodeString[testCatalog](testSchema, []byte(`entries: []`), "#Missing")
	if err == nil {
		t.Fatal("ParseAndDecodeString() expected error for unknown schema path")
	}
}

func TestParseAndDecodeString_FileTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte(`entries: []`)
	_, err := cueutil.ParseAndDecodeString[testCatalog](testSchema, data, "#Catalog", cueutil.WithMaxFileSize(4))
	if err == nil {
		t.Fatal("ParseAndDecodeString() expected error for oversized input")
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := cueutil.CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("CheckFileSize() at limit: unexpected error %v", err)
	}
	if err := cueutil.CheckFileSize(make([]byte, 11), 10, "f"); err == nil {
		t.Error("CheckFileSize() over limit: expected error")
	}
}
