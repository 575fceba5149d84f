/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema publishes JSON Schema documents for the typography input
// and export formats, reflected from the Go types that decode them.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"

	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

// Name identifies a published schema.
type Name string

const (
	// Input describes typography input documents.
	Input Name = "input"
	// Export describes the generated export document.
	Export Name = "export"
)

// BaseURL prefixes schema $id values.
const BaseURL = "https://bennypowers.dev/typescale/schemas/"

// Names returns all schema names.
func Names() []string {
	return []string{string(Input), string(Export)}
}

// ParseName converts a string to a Name.
func ParseName(s string) (Name, error) {
	switch Name(strings.ToLower(s)) {
	case Input:
		return Input, nil
	case Export:
		return Export, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnknownSchema, s, strings.Join(Names(), ", "))
	}
}

// Reflect builds the schema for name.
func Reflect(name Name) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Mapper:         mapType,
	}

	var s *jsonschema.Schema
	switch name {
	case Input:
		s = r.Reflect(new(typography.Input))
		s.Title = "typescale input"
		s.Description = "Font families, text roles and the font size scale a typography export is generated from."
	case Export:
		s = r.Reflect(new(typography.Export))
		s.Title = "typescale export"
		s.Description = "Deduplicated typography properties and the token sets that select them."
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	s.ID = jsonschema.ID(BaseURL + string(name) + ".schema.json")
	return s, nil
}

// Generate returns the indented JSON Schema document for name.
func Generate(name Name) ([]byte, error) {
	s, err := Reflect(name)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}

var (
	rawMessageType    = reflect.TypeFor[json.RawMessage]()
	fontStyleRuleType = reflect.TypeFor[typography.FontStyleRule]()
	propertyType      = reflect.TypeFor[typography.Property]()
	assignmentType    = reflect.TypeFor[typography.Assignment]()
	tokenSetType      = reflect.TypeFor[token.Set]()
)

// mapType supplies schemas for types with custom JSON encodings.
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case rawMessageType:
		return &jsonschema.Schema{Description: "Consumer-defined payload."}
	case fontStyleRuleType:
		return &jsonschema.Schema{
			Type:        "object",
			Description: `Per-consumer style payload, e.g. {"CSS":[{"FontWeight":700}],"Figma":{"FontSuffix":[" Bold",1]}}.`,
		}
	case tokenSetType:
		return tokenSetSchema()
	case assignmentType:
		return &jsonschema.Schema{
			Type:        "array",
			Description: "A [requirements, property indices] pair.",
			PrefixItems: []*jsonschema.Schema{
				tokenSetSchema(),
				{Type: "array", Items: &jsonschema.Schema{Type: "integer", Minimum: json.Number("0")}},
			},
		}
	case propertyType:
		return propertySchema()
	}
	return nil
}

func tokenSetSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: "Tokens in canonical order: an optional kind first, then key:value tokens sorted by key.",
		Items: &jsonschema.Schema{
			Type:    "string",
			Pattern: `^[^:\s,]+(:[^:\s,]+)?$`,
		},
		UniqueItems: true,
	}
}

// propertySchema describes the externally tagged Property encoding.
func propertySchema() *jsonschema.Schema {
	variant := func(tag string, body *jsonschema.Schema) *jsonschema.Schema {
		props := jsonschema.NewProperties()
		props.Set(tag, body)
		return &jsonschema.Schema{
			Type:                 "object",
			Properties:           props,
			Required:             []string{tag},
			AdditionalProperties: jsonschema.FalseSchema,
		}
	}
	object := func(field, typ string) *jsonschema.Schema {
		props := jsonschema.NewProperties()
		props.Set(field, &jsonschema.Schema{Type: typ})
		return &jsonschema.Schema{
			Type:                 "object",
			Properties:           props,
			Required:             []string{field},
			AdditionalProperties: jsonschema.FalseSchema,
		}
	}

	return &jsonschema.Schema{
		Description: "One resolved typography property.",
		OneOf: []*jsonschema.Schema{
			variant("FontFamily", object("family_name", "string")),
			variant("FontSize", object("px", "number")),
			variant("LineHeight", object("px", "number")),
			variant("LetterSpacing", object("px", "number")),
			variant("FontStyle", &jsonschema.Schema{Type: "object"}),
		},
	}
}
