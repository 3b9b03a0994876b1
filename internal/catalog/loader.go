package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a catalog file.
type Format string

// Supported catalog formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath infers the catalog format from a file extension.
//
// Postcondition: ok is false when the extension is not recognised.
func FormatForPath(path string) (f Format, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// ParseFormat maps a configured format name to a Format. "auto" and "" yield
// ok == true with an empty Format, meaning "infer from the path".
func ParseFormat(name string) (f Format, ok bool) {
	switch strings.ToLower(name) {
	case "", "auto":
		return "", true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	}
	return "", false
}

// LoadFromBytes parses a catalog document in the given format.
//
// Precondition: format must be FormatJSON or FormatYAML.
// Postcondition: Returns a complete Catalog in document order, or an error
// wrapping ErrMalformedInput; no partial catalog is ever returned.
func LoadFromBytes(data []byte, format Format) (*Catalog, error) {
	var (
		creatures []*Creature
		err       error
	)
	switch format {
	case FormatJSON:
		creatures, err = decodeJSON(data)
	case FormatYAML:
		creatures, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("catalog: LoadFromBytes: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return New(creatures)
}

// LoadFromFile reads and parses the catalog at path. When format is empty it is
// inferred from the file extension.
//
// Precondition: path must name a readable file.
// Postcondition: Returns a complete Catalog or a non-nil error.
func LoadFromFile(path string, format Format) (*Catalog, error) {
	if format == "" {
		f, ok := FormatForPath(path)
		if !ok {
			return nil, fmt.Errorf("catalog: LoadFromFile: cannot infer format of %q", path)
		}
		format = f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	c, err := LoadFromBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", path, err)
	}
	return c, nil
}

// DataPath turns a user-typed file name into a catalog path: YAML names are
// kept as typed, anything else gets exactly one ".json" suffix.
//
// Postcondition: the result is never empty for a non-blank input.
func DataPath(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if f, ok := FormatForPath(input); ok && f == FormatYAML {
		return input
	}
	return strings.TrimSuffix(input, ".json") + ".json"
}
