/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package exportjson reads and writes the typography export document.
//
// Output is compact per element and one element per line, so diffs of
// regenerated exports stay readable.
package exportjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/typography"
)

// Formatter outputs the export document.
type Formatter struct{}

// New creates a new export formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format implements formatter.Formatter.
func (f *Formatter) Format(lk *lookup.Lookup, _ formatter.Options) ([]byte, error) {
	return Marshal(lk.Export())
}

// Marshal encodes exp with one property and one assignment per line.
func Marshal(exp *typography.Export) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	buf.WriteString(`"properties":[`)
	for i, p := range exp.Properties {
		if err := writeElement(&buf, i, p); err != nil {
			return nil, fmt.Errorf("property %d: %w", i, err)
		}
	}
	buf.WriteString("\n],\n")

	buf.WriteString(`"tokens":[`)
	for i, a := range exp.Tokens {
		if err := writeElement(&buf, i, a); err != nil {
			return nil, fmt.Errorf("assignment %d: %w", i, err)
		}
	}
	buf.WriteString("\n],\n")

	extensions := exp.Extensions
	if extensions == nil {
		extensions = map[string]json.RawMessage{}
	}
	ext, err := json.Marshal(extensions)
	if err != nil {
		return nil, fmt.Errorf("extensions: %w", err)
	}
	buf.WriteString(`"extensions":`)
	buf.Write(ext)
	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

func writeElement(buf *bytes.Buffer, i int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if i > 0 {
		buf.WriteByte(',')
	}
	buf.WriteString("\n  ")
	buf.Write(data)
	return nil
}

// Unmarshal decodes and validates an export document.
func Unmarshal(data []byte) (*typography.Export, error) {
	var exp typography.Export
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	if exp.Extensions == nil {
		exp.Extensions = map[string]json.RawMessage{}
	}
	return &exp, nil
}
