/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dtcg renders sized text roles as DTCG typography composite tokens.
package dtcg

import (
	"encoding/json"
	"math"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

// ExtensionKey namespaces the $extensions data written on each token.
const ExtensionKey = "dev.typescale"

// Formatter outputs DTCG-compliant JSON.
type Formatter struct{}

// New creates a new DTCG formatter.
func New() *Formatter {
	return &Formatter{}
}

// Dimension is a DTCG dimension value.
type Dimension struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Value is a DTCG typography composite value.
// LineHeight is unitless, relative to FontSize.
type Value struct {
	FontFamily    string     `json:"fontFamily"`
	FontSize      Dimension  `json:"fontSize"`
	LineHeight    *float64   `json:"lineHeight,omitempty"`
	LetterSpacing *Dimension `json:"letterSpacing,omitempty"`
}

// Entry is one sized text role with its reduced value.
type Entry struct {
	Role     string
	Size     string
	Value    Value
	Required token.Set
}

type tokenNode struct {
	Type       string                    `json:"$type"`
	Value      Value                     `json:"$value"`
	Extensions map[string]map[string]any `json:"$extensions,omitempty"`
}

// Entries returns, in export order, every {kind, role, size} rule whose merged
// properties carry a family and a non-zero size.
func Entries(lk *lookup.Lookup, opts formatter.Options) []Entry {
	kind := opts.QueryKind
	if kind == "" {
		kind = formatter.DefaultQueryKind
	}

	var entries []Entry
	for _, a := range lk.Export().Tokens {
		role, size, ok := sizedRole(a.Requirements, kind)
		if !ok {
			continue
		}
		res := lk.Query(a.Requirements)
		value, ok := reduce(res.Properties)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Role: role, Size: size, Value: value, Required: res.Required})
	}
	return entries
}

// Format emits one typography token per {kind, role, size} rule, grouped by role:
//
//	{"<prefix>": {"<role>": {"<size>": {"$type": "typography", "$value": {...}}}}}
//
// The prefix level is omitted when no prefix is configured.
func (f *Formatter) Format(lk *lookup.Lookup, opts formatter.Options) ([]byte, error) {
	roles := map[string]map[string]tokenNode{}
	for _, e := range Entries(lk, opts) {
		if roles[e.Role] == nil {
			roles[e.Role] = map[string]tokenNode{}
		}
		roles[e.Role][e.Size] = tokenNode{
			Type:  "typography",
			Value: e.Value,
			Extensions: map[string]map[string]any{
				ExtensionKey: {"tokens": e.Required},
			},
		}
	}

	var out any = roles
	if opts.Prefix != "" {
		out = map[string]any{opts.Prefix: roles}
	}
	return json.MarshalIndent(out, "", "  ")
}

// sizedRole reports whether req is exactly {kind, role:R, size:S}.
func sizedRole(req token.Set, kind string) (role, size string, ok bool) {
	if k, has := req.Kind(); !has || k != kind || req.Len() != 3 {
		return "", "", false
	}
	role, hasRole := req.Value(typography.KeyRole)
	size, hasSize := req.Value(typography.KeySize)
	return role, size, hasRole && hasSize
}

func reduce(props []typography.Property) (Value, bool) {
	var v Value
	var hasSize bool
	var lineHeightPx *float64
	for _, p := range props {
		switch p.Kind {
		case typography.FontFamily:
			v.FontFamily = p.FamilyName
		case typography.FontSize:
			v.FontSize = Dimension{Value: round(p.Px), Unit: "px"}
			hasSize = true
		case typography.LineHeight:
			lineHeightPx = &p.Px
		case typography.LetterSpacing:
			v.LetterSpacing = &Dimension{Value: round(p.Px), Unit: "px"}
		}
	}
	if v.FontFamily == "" || !hasSize || v.FontSize.Value == 0 {
		return Value{}, false
	}
	if lineHeightPx != nil {
		ratio := round(*lineHeightPx / v.FontSize.Value)
		v.LineHeight = &ratio
	}
	return v, true
}

// round trims float noise to four decimal places.
func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
