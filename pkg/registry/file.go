// SPDX-License-Identifier: MPL-2.0

package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhochwald/PSCommandShortener/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnsupportedFileFormat is returned for registry files whose extension is
// neither .cue nor .toml.
var ErrUnsupportedFileFormat = errors.New("unsupported registry file format")

//go:embed registry_schema.cue
var fileSchema string

// maxFileSize bounds registry files so a stray path never OOMs the process.
const maxFileSize = 4 << 20

// File is the document decoded from a user-supplied registry file.
type File struct {
	Commands []Definition `json:"commands" toml:"commands"`
}

// LoadFile reads and decodes a registry file, dispatching on the extension:
// .cue files are validated against the embedded schema, .toml files are
// decoded directly. The returned definitions are validated but not yet merged
// into a registry; see NewStatic.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("registry file %s exceeds %d bytes", path, maxFileSize)
	}

	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		f, err = decodeCUE(data, filepath.Base(path))
	case ".toml":
		f, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q (want .cue or .toml)", ErrUnsupportedFileFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode registry file %s: %w", path, err)
	}

	for _, def := range f.Commands {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("registry file %s: %w", path, err)
		}
	}
	return f, nil
}

// decodeCUE runs the 3-step CUE flow against the embedded #File schema:
// compile, unify, then validate and decode.
func decodeCUE(data []byte, filename string) (*File, error) {
	result, err := cueutil.ParseAndDecodeString[File](fileSchema, data, "#File",
		cueutil.WithFilename(filename),
		cueutil.WithMaxFileSize(maxFileSize))
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

func decodeTOML(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load builds a registry from the builtin catalog plus an optional registry
// file. An empty path loads just the builtin catalog; includeBuiltin false
// restricts the registry to the file's definitions alone.
func Load(path string, includeBuiltin bool) (*Static, error) {
	var defs []Definition
	if includeBuiltin {
		defs = append(defs, builtinDefinitions...)
	}
	if path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, f.Commands...)
	}
	return NewStatic(defs)
}
