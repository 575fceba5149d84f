/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"encoding/json"
	"maps"

	"bennypowers.dev/typescale/typography"
)

// Merge combines inputs in order. Families and text roles accumulate.
// A later font size scale replaces an earlier one when it declares sizes
// or an equation. Extensions merge per consumer with later inputs winning.
func Merge(inputs ...*typography.Input) *typography.Input {
	merged := &typography.Input{}
	for _, in := range inputs {
		if in == nil {
			continue
		}
		merged.Families = append(merged.Families, in.Families...)
		merged.TextRoles = append(merged.TextRoles, in.TextRoles...)

		scale := in.FontSizeScale
		if len(scale.FontSizes) > 0 || scale.Equation.Multiplier != nil {
			merged.FontSizeScale = scale
		}

		if len(in.Extensions) > 0 {
			if merged.Extensions == nil {
				merged.Extensions = make(map[string]json.RawMessage, len(in.Extensions))
			}
			maps.Copy(merged.Extensions, in.Extensions)
		}
	}
	return merged
}
