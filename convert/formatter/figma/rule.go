/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bennypowers.dev/typescale/typography"
)

// Consumer is the FontStyle sub-key this package reads.
const Consumer = "Figma"

// Rule is the decoded Figma part of a FontStyle payload. Exactly one field is set.
type Rule struct {
	// Suffix is appended to the family's style name, ordered by Precedence.
	Suffix *SuffixPart

	// Variation is a variable-font axis value, passed through verbatim.
	Variation *Variation
}

// SuffixPart is a style-name fragment with its ordering precedence.
type SuffixPart struct {
	Value      string
	Precedence int
}

// Variation is an axis/value pair such as ("wght", "700").
type Variation struct {
	Axis  string
	Value string
}

// DecodeStyleRule reads the Figma sub-key of rule.
//
// It accepts {"FontSuffix": [suffix, precedence]} and {"FontVariation": [axis, value]}.
// ok is false when the payload has no (or a null) Figma sub-key.
func DecodeStyleRule(rule typography.FontStyleRule) (Rule, bool, error) {
	raw, ok := rule.Field(Consumer, "figma")
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Rule{}, false, nil
	}

	fail := func(err error) (Rule, bool, error) {
		return Rule{}, false, &typography.StyleRuleDecodeError{Consumer: Consumer, Err: err}
	}

	var variants map[string]json.RawMessage
	if err := json.Unmarshal(raw, &variants); err != nil {
		return fail(fmt.Errorf("expected an object: %w", err))
	}
	if len(variants) != 1 {
		return fail(fmt.Errorf("expected exactly one of FontSuffix or FontVariation, got %d keys", len(variants)))
	}

	for tag, body := range variants {
		var pair []json.RawMessage
		if err := json.Unmarshal(body, &pair); err != nil || len(pair) != 2 {
			return fail(fmt.Errorf("%s must be a two-element array", tag))
		}
		switch tag {
		case "FontSuffix":
			var part SuffixPart
			if err := json.Unmarshal(pair[0], &part.Value); err != nil {
				return fail(fmt.Errorf("FontSuffix suffix: %w", err))
			}
			if err := json.Unmarshal(pair[1], &part.Precedence); err != nil {
				return fail(fmt.Errorf("FontSuffix precedence: %w", err))
			}
			return Rule{Suffix: &part}, true, nil
		case "FontVariation":
			var v Variation
			if err := json.Unmarshal(pair[0], &v.Axis); err != nil {
				return fail(fmt.Errorf("FontVariation axis: %w", err))
			}
			if err := json.Unmarshal(pair[1], &v.Value); err != nil {
				return fail(fmt.Errorf("FontVariation value: %w", err))
			}
			return Rule{Variation: &v}, true, nil
		default:
			return fail(fmt.Errorf("unknown variant %q", tag))
		}
	}
	return Rule{}, false, nil
}
