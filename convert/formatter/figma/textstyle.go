/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"errors"
	"fmt"

	"bennypowers.dev/typescale/typography"
)

// DefaultStyleName is used when no FontSuffix fragment applies.
const DefaultStyleName = "Regular"

// TextStyle is one Figma text style record.
type TextStyle struct {
	Name               string      `json:"name"`
	Key                string      `json:"key"`
	Description        string      `json:"description,omitempty"`
	FamilyNameAndStyle [2]string   `json:"family_name_and_style"`
	FontSizePx         float64     `json:"font_size_px"`
	LineHeightPx       *float64    `json:"line_height_px,omitempty"`
	LetterSpacingPx    *float64    `json:"letter_spacing_px,omitempty"`
	VariantValues      [][2]string `json:"variant_values"`
}

// Family returns the font family name.
func (ts TextStyle) Family() string {
	return ts.FamilyNameAndStyle[0]
}

// Style returns the composed font style name, e.g. "Bold Italic".
func (ts TextStyle) Style() string {
	return ts.FamilyNameAndStyle[1]
}

// Reduce folds a merged property list into a text style record.
//
// Later FontFamily, FontSize, LineHeight and LetterSpacing values override earlier
// ones. FontStyle payloads contribute suffix fragments by precedence and variation
// values in encounter order. A list without a FontFamily or FontSize yields
// typography.ErrUnresolvedTextStyle.
func Reduce(name, key string, props []typography.Property) (TextStyle, error) {
	ts := TextStyle{Name: name, Key: key, VariantValues: [][2]string{}}
	var (
		suffix    Suffix
		family    string
		hasSize   bool
		decodeErr []error
	)

	for _, p := range props {
		switch p.Kind {
		case typography.FontFamily:
			family = p.FamilyName
		case typography.FontSize:
			ts.FontSizePx = p.Px
			hasSize = true
		case typography.LineHeight:
			ts.LineHeightPx = &p.Px
		case typography.LetterSpacing:
			ts.LetterSpacingPx = &p.Px
		case typography.FontStyle:
			rule, ok, err := DecodeStyleRule(p.Style)
			if err != nil {
				var de *typography.StyleRuleDecodeError
				if errors.As(err, &de) {
					de.Context = fmt.Sprintf("%q", name)
				}
				decodeErr = append(decodeErr, err)
				continue
			}
			if !ok {
				continue
			}
			switch {
			case rule.Suffix != nil:
				suffix.Set(rule.Suffix.Precedence, rule.Suffix.Value)
			case rule.Variation != nil:
				ts.VariantValues = append(ts.VariantValues, [2]string{rule.Variation.Axis, rule.Variation.Value})
			}
		}
	}

	if err := errors.Join(decodeErr...); err != nil {
		return TextStyle{}, err
	}
	if family == "" {
		return TextStyle{}, fmt.Errorf("%w: %q has no font family", typography.ErrUnresolvedTextStyle, name)
	}
	if !hasSize {
		return TextStyle{}, fmt.Errorf("%w: %q has no font size", typography.ErrUnresolvedTextStyle, name)
	}

	style := suffix.String()
	if style == "" {
		style = DefaultStyleName
	}
	ts.FamilyNameAndStyle = [2]string{family, style}
	return ts, nil
}
