// Package document decodes JSON and YAML payloads into the untyped values
// checkers operate on.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a payload encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrDecode is returned when a payload cannot be decoded.
var ErrDecode = errors.New("cannot decode document")

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json, yaml or auto)", s)
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// Sniff guesses the format of data: JSON when it starts with '{' or '[',
// YAML otherwise.
func Sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses data into an untyped value. Objects become map[string]any,
// arrays []any and JSON numbers float64.
func Decode(data []byte, format Format) (any, error) {
	if format == FormatAuto || format == "" {
		format = Sniff(data)
	}

	var v any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrDecode, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
		}
		v = normalize(v)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrDecode, format)
	}
	return v, nil
}

// ReadFile reads and decodes the document at path. The format is taken from
// the extension and sniffed from the content when the extension is unknown.
func ReadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatForPath(path))
}

// normalize rewrites YAML mappings with non-string keys into string-keyed
// maps so they classify as objects. Keys are formatted with %v.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	}
	return v
}
