/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/typescale/fs"
	"bennypowers.dev/typescale/typography"
)

// InputParser parses JSON, JSONC and YAML typography inputs.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// Parse detects the document format and decodes it.
func (p *InputParser) Parse(data []byte, opts Options) (*typography.Input, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	if isLikelyJSON(data) {
		return decodeJSON(jsonc.ToJSON(data), opts)
	}
	return p.parseYAML(data, opts)
}

// ParseFile reads path and decodes it. The extension selects the format,
// falling back to content detection for unknown extensions.
func (p *InputParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*typography.Input, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	var in *typography.Input
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		in, err = decodeJSON(jsonc.ToJSON(data), opts)
	case ".yaml", ".yml":
		in, err = p.parseYAML(data, opts)
	default:
		in, err = p.Parse(data, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

func (p *InputParser) parseYAML(data []byte, opts Options) (*typography.Input, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	root, ok := normalizeMap(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("YAML root must be an object")
	}
	// Round-trip through JSON so custom unmarshalers see one representation.
	data, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML: %w", err)
	}
	return decodeJSON(data, opts)
}

// inputKeys are the top-level members of a typography input.
var inputKeys = []string{"Families", "TextRoles", "FontSizeScale", "Extensions"}

// envelopeKeys name the member holding the input when a settings script emits
// typography next to other systems, e.g. {"typography": {...}, "color_palette": {...}}.
var envelopeKeys = []string{"typography", "Typography"}

func decodeJSON(data []byte, opts Options) (*typography.Input, error) {
	data, err := unwrapEnvelope(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if opts.Strict {
		dec.DisallowUnknownFields()
	}
	var in typography.Input
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &in, nil
}

// unwrapEnvelope returns the document that holds the typography members:
// data itself, or the object under an envelope key.
func unwrapEnvelope(data []byte) ([]byte, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if hasAnyKey(root, inputKeys) {
		return data, nil
	}
	for _, key := range envelopeKeys {
		inner, ok := root[key]
		if !ok {
			continue
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(inner, &nested); err != nil {
			return nil, fmt.Errorf("%q must be an object: %w", key, err)
		}
		if hasAnyKey(nested, inputKeys) {
			return inner, nil
		}
	}
	keys := slices.Sorted(maps.Keys(root))
	if len(keys) == 0 {
		return nil, ErrNoTypography
	}
	return nil, fmt.Errorf("%w (top-level keys: %s)", ErrNoTypography, strings.Join(keys, ", "))
}

func hasAnyKey(m map[string]json.RawMessage, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// isLikelyJSON reports whether data starts with '{' once whitespace,
// a UTF-8 BOM and JSONC comments are skipped.
func isLikelyJSON(data []byte) bool {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		case '/':
			if i+1 >= len(data) {
				return false
			}
			switch data[i+1] {
			case '/':
				end := bytes.IndexByte(data[i:], '\n')
				if end < 0 {
					return false
				}
				i += end
			case '*':
				end := bytes.Index(data[i+2:], []byte("*/"))
				if end < 0 {
					return false
				}
				i += end + 3
			default:
				return false
			}
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[any]any to map[string]any.
// YAML with numeric keys (like "10:") decodes to map[any]any.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
