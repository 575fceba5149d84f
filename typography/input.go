/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typography generates typography design tokens from a declarative input.
//
// The generator turns font families, text roles and a font-size scale into a set of
// rules (requirement set → properties) gathered by a Collector, which freezes into
// a deduplicated Export.
package typography

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Input is the typography input document.
type Input struct {
	Families      []Family                   `json:"Families"`
	TextRoles     []TextRole                 `json:"TextRoles"`
	FontSizeScale FontSizeScale              `json:"FontSizeScale"`
	Extensions    map[string]json.RawMessage `json:"Extensions,omitempty" jsonschema:"type=object"`
}

// Family describes one font family and how its styles are selected.
type Family struct {
	BaseName               string          `json:"BaseName"`
	CSSFontFamilyName      string          `json:"CSSFontFamilyName,omitempty"`
	CSSFontFamilyFallbacks []string        `json:"CSSFontFamilyFallbacks,omitempty"`
	Metrics                Metrics         `json:"Metrics"`
	DefaultRules           []FontStyleRule `json:"DefaultRules,omitempty"`
	Weights                []Weight        `json:"Weights,omitempty"`
	ItalicOption           *FontStyleRule  `json:"ItalicOption,omitempty"`
}

// Metrics are font metrics in font units, as published by capsize.
type Metrics struct {
	FamilyName string  `json:"familyName,omitempty"`
	Category   string  `json:"category,omitempty"`
	CapHeight  float64 `json:"capHeight"`
	Ascent     float64 `json:"ascent"`
	Descent    float64 `json:"descent"`
	LineGap    float64 `json:"lineGap"`
	UnitsPerEm float64 `json:"unitsPerEm"`
	XHeight    float64 `json:"xHeight,omitempty"`
	XWidthAvg  float64 `json:"xWidthAvg,omitempty"`
}

// Weight maps a numeric weight to the style rule that selects it.
type Weight struct {
	Weight        int           `json:"Weight"`
	FontStyleRule FontStyleRule `json:"FontStyleRule"`
}

// TextRole binds a role token to a family and its spacing rules.
type TextRole struct {
	Token          string         `json:"Token"`
	FamilyBaseName string         `json:"FamilyBaseName"`
	LineHeightRule LineHeightRule `json:"LineHeightRule"`
	TrackingRule   TrackingRule   `json:"TrackingRule"`
}

// FontSizeScale lists the named sizes and the equation that produces their cap heights.
type FontSizeScale struct {
	FontSizes               []ScaleStep `json:"FontSizes"`
	Equation                Equation    `json:"Equation"`
	AlignCapHeightPxOption  *float64    `json:"AlignCapHeightPxOption,omitempty"`
	AlignLineHeightPxOption *float64    `json:"AlignLineHeightPxOption,omitempty"`
}

// ScaleStep is a named step on the font size scale.
type ScaleStep struct {
	Token string  `json:"Token"`
	Rel   float64 `json:"Rel"`
}

// FontStyleRule is an opaque, consumer-defined style payload, e.g.
// {"CSS":[{"FontWeight":700}],"Figma":{"FontSuffix":[" Bold",1]}}.
//
// The payload is stored as canonical JSON (object keys sorted) so two rules with
// the same content compare equal regardless of source formatting.
type FontStyleRule struct {
	raw json.RawMessage
}

// NewFontStyleRule builds a rule from any JSON-marshalable value.
func NewFontStyleRule(v any) (FontStyleRule, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return FontStyleRule{}, err
	}
	var r FontStyleRule
	if err := r.UnmarshalJSON(data); err != nil {
		return FontStyleRule{}, err
	}
	return r, nil
}

// MustFontStyleRule parses a JSON literal and panics on error.
func MustFontStyleRule(s string) FontStyleRule {
	var r FontStyleRule
	if err := r.UnmarshalJSON([]byte(s)); err != nil {
		panic(err)
	}
	return r
}

// Raw returns the canonical JSON payload.
func (r FontStyleRule) Raw() json.RawMessage {
	if len(r.raw) == 0 {
		return json.RawMessage("null")
	}
	return r.raw
}

// Equal compares canonical payloads.
func (r FontStyleRule) Equal(other FontStyleRule) bool {
	return bytes.Equal(r.Raw(), other.Raw())
}

// Field returns the raw sub-field stored under the first of names present.
// The payload must be an object; otherwise ok is false.
func (r FontStyleRule) Field(names ...string) (json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.Raw(), &fields); err != nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := fields[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (r FontStyleRule) String() string {
	return string(r.Raw())
}

// MarshalJSON implements json.Marshaler.
func (r FontStyleRule) MarshalJSON() ([]byte, error) {
	return r.Raw(), nil
}

// UnmarshalJSON implements json.Unmarshaler, canonicalizing the payload.
func (r *FontStyleRule) UnmarshalJSON(data []byte) error {
	canonical, err := canonicalJSON(data)
	if err != nil {
		return fmt.Errorf("invalid font style rule: %w", err)
	}
	r.raw = canonical
	return nil
}

// canonicalJSON re-encodes data with sorted object keys and original number literals.
func canonicalJSON(data []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return out, nil
}
