/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"fmt"
	"strconv"

	"bennypowers.dev/typescale/internal/logger"
	"bennypowers.dev/typescale/token"
)

// Token vocabulary produced by the generator.
const (
	KindText  = "text"
	KeyRole   = "role"
	KeySize   = "size"
	KeyWeight = "weight"
	KeyItalic = "italic"
)

// Generate collects every rule for in and returns the frozen Export.
func Generate(in *Input) (*Export, error) {
	c, err := Collect(in)
	if err != nil {
		return nil, err
	}
	return c.Build(), nil
}

// Collect pushes every rule for in into a new Collector without freezing it.
//
// Per text role: {text, role:R} gets the family and its default style rules, and
// {text, role:R, size:S} gets FontSize, LetterSpacing and LineHeight for each size.
// Per family, for each role using it: {role:R, weight:W} gets the weight's style
// rule and {role:R, italic:true} the italic rule.
func Collect(in *Input) (*Collector, error) {
	c := NewCollector()
	families := make(map[string]*Family, len(in.Families))
	for i := range in.Families {
		families[in.Families[i].BaseName] = &in.Families[i]
	}
	rolesByFamily := make(map[string][]token.Token)
	scale := in.FontSizeScale

	for _, role := range in.TextRoles {
		roleToken := token.Value(KeyRole, role.Token)
		rolesByFamily[role.FamilyBaseName] = append(rolesByFamily[role.FamilyBaseName], roleToken)

		base := []token.Token{token.Kind(KindText), roleToken}
		c.Push(base, NewFontFamily(role.FamilyBaseName))

		family, ok := families[role.FamilyBaseName]
		if !ok {
			return nil, &MissingFamilyError{Family: role.FamilyBaseName, Role: role.Token}
		}
		for _, rule := range family.DefaultRules {
			c.Push(base, NewFontStyle(rule))
		}

		recip := family.Metrics.UnitsPerEm / family.Metrics.CapHeight

		for _, size := range scale.FontSizes {
			capHeightPx, err := scale.Equation.CapHeightPx(size.Rel, scale.AlignCapHeightPxOption)
			if err != nil {
				return nil, err
			}
			fontSizePx := recip * capHeightPx

			trackingPx, err := role.TrackingRule.TrackingPx(fontSizePx)
			if err != nil {
				return nil, fmt.Errorf("text role %q: %w", role.Token, err)
			}
			lineHeightPx, err := role.LineHeightRule.LineHeightPx(fontSizePx, scale.AlignLineHeightPxOption)
			if err != nil {
				return nil, fmt.Errorf("text role %q: %w", role.Token, err)
			}

			c.PushAll(
				append(base[:len(base):len(base)], token.Value(KeySize, size.Token)),
				NewFontSize(fontSizePx),
				NewLetterSpacing(trackingPx),
				NewLineHeight(lineHeightPx),
			)
		}
		logger.Debug("collected %d sizes for role %q (%s)", len(scale.FontSizes), role.Token, role.FamilyBaseName)
	}

	for _, family := range in.Families {
		for _, roleToken := range rolesByFamily[family.BaseName] {
			for _, w := range family.Weights {
				c.Push(
					[]token.Token{roleToken, token.Value(KeyWeight, strconv.Itoa(w.Weight))},
					NewFontStyle(w.FontStyleRule),
				)
			}
			if family.ItalicOption != nil {
				c.Push(
					[]token.Token{roleToken, token.Value(KeyItalic, "true")},
					NewFontStyle(*family.ItalicOption),
				)
			}
		}
	}

	for name, raw := range in.Extensions {
		c.SetExtension(name, raw)
	}

	return c, nil
}
