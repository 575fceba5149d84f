/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"encoding/json"
	"fmt"
)

// PropertyKind discriminates the Property variants.
type PropertyKind int

const (
	FontFamily PropertyKind = iota + 1
	LineHeight
	FontSize
	LetterSpacing
	FontStyle
)

var propertyKindNames = map[PropertyKind]string{
	FontFamily:    "FontFamily",
	LineHeight:    "LineHeight",
	FontSize:      "FontSize",
	LetterSpacing: "LetterSpacing",
	FontStyle:     "FontStyle",
}

func (k PropertyKind) String() string {
	if name, ok := propertyKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PropertyKind(%d)", int(k))
}

// Property is one typography value assigned by a rule.
//
// Only the field matching Kind is meaningful: FamilyName for FontFamily, Px for the
// pixel-valued kinds, Style for FontStyle.
type Property struct {
	Kind       PropertyKind
	FamilyName string
	Px         float64
	Style      FontStyleRule
}

// NewFontFamily returns a FontFamily property.
func NewFontFamily(name string) Property {
	return Property{Kind: FontFamily, FamilyName: name}
}

// NewFontSize returns a FontSize property.
func NewFontSize(px float64) Property {
	return Property{Kind: FontSize, Px: px}
}

// NewLineHeight returns a LineHeight property.
func NewLineHeight(px float64) Property {
	return Property{Kind: LineHeight, Px: px}
}

// NewLetterSpacing returns a LetterSpacing property.
func NewLetterSpacing(px float64) Property {
	return Property{Kind: LetterSpacing, Px: px}
}

// NewFontStyle returns a FontStyle property.
func NewFontStyle(rule FontStyleRule) Property {
	return Property{Kind: FontStyle, Style: rule}
}

// Equal reports structural equality.
func (p Property) Equal(other Property) bool {
	if p.Kind != other.Kind {
		return false
	}
	switch p.Kind {
	case FontFamily:
		return p.FamilyName == other.FamilyName
	case FontStyle:
		return p.Style.Equal(other.Style)
	default:
		return p.Px == other.Px
	}
}

// hashKey is the hashable projection of a Property used for deduplication.
type hashKey struct {
	Kind       int
	FamilyName string
	Px         float64
	Style      string
}

func (p Property) hashKey() hashKey {
	k := hashKey{Kind: int(p.Kind)}
	switch p.Kind {
	case FontFamily:
		k.FamilyName = p.FamilyName
	case FontStyle:
		k.Style = string(p.Style.Raw())
	default:
		// Equal treats -0 and 0 alike; hash them alike.
		if p.Px != 0 {
			k.Px = p.Px
		}
	}
	return k
}

func (p Property) String() string {
	switch p.Kind {
	case FontFamily:
		return fmt.Sprintf("FontFamily(%s)", p.FamilyName)
	case FontStyle:
		return fmt.Sprintf("FontStyle(%s)", p.Style)
	default:
		return fmt.Sprintf("%s(%gpx)", p.Kind, p.Px)
	}
}

type familyPayload struct {
	FamilyName string `json:"family_name"`
}

type pxPayload struct {
	Px float64 `json:"px"`
}

// MarshalJSON encodes the externally tagged form, e.g. {"FontSize":{"px":12}}.
func (p Property) MarshalJSON() ([]byte, error) {
	var payload any
	switch p.Kind {
	case FontFamily:
		payload = familyPayload{FamilyName: p.FamilyName}
	case LineHeight, FontSize, LetterSpacing:
		payload = pxPayload{Px: p.Px}
	case FontStyle:
		payload = p.Style
	default:
		return nil, fmt.Errorf("cannot marshal property of unknown kind %d", int(p.Kind))
	}
	return json.Marshal(map[string]any{p.Kind.String(): payload})
}

// UnmarshalJSON decodes the externally tagged form.
func (p *Property) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return fmt.Errorf("property must have exactly one variant key, got %d", len(tagged))
	}
	for tag, body := range tagged {
		switch tag {
		case "FontFamily":
			var v familyPayload
			if err := json.Unmarshal(body, &v); err != nil {
				return fmt.Errorf("FontFamily: %w", err)
			}
			*p = NewFontFamily(v.FamilyName)
		case "LineHeight", "FontSize", "LetterSpacing":
			var v pxPayload
			if err := json.Unmarshal(body, &v); err != nil {
				return fmt.Errorf("%s: %w", tag, err)
			}
			switch tag {
			case "LineHeight":
				*p = NewLineHeight(v.Px)
			case "FontSize":
				*p = NewFontSize(v.Px)
			default:
				*p = NewLetterSpacing(v.Px)
			}
		case "FontStyle":
			var rule FontStyleRule
			if err := rule.UnmarshalJSON(body); err != nil {
				return err
			}
			*p = NewFontStyle(rule)
		default:
			return fmt.Errorf("unknown property variant %q", tag)
		}
	}
	return nil
}
