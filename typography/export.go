/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/typescale/token"
)

// Assignment binds a requirement set to property indices in Export.Properties.
type Assignment struct {
	Requirements token.Set
	Properties   []int
}

// MarshalJSON encodes the assignment as a [requirements, [indices...]] tuple.
func (a Assignment) MarshalJSON() ([]byte, error) {
	props := a.Properties
	if props == nil {
		props = []int{}
	}
	return json.Marshal([]any{a.Requirements, props})
}

// UnmarshalJSON decodes the tuple form.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("assignment must be a [tokens, indices] pair, got %d elements", len(tuple))
	}
	var out Assignment
	if err := json.Unmarshal(tuple[0], &out.Requirements); err != nil {
		return fmt.Errorf("assignment tokens: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &out.Properties); err != nil {
		return fmt.Errorf("assignment indices: %w", err)
	}
	*a = out
	return nil
}

// Export is the frozen, deduplicated result of a Collector.
//
// Properties holds each distinct property once. Tokens holds one assignment per
// distinct requirement set in first-push order. Extensions carries per-consumer
// configuration keyed by lower-cased consumer name.
type Export struct {
	Properties []Property                 `json:"properties"`
	Tokens     []Assignment               `json:"tokens"`
	Extensions map[string]json.RawMessage `json:"extensions" jsonschema:"type=object"`
}

// Resolve returns the properties referenced by the assignment at index i.
func (e *Export) Resolve(i int) []Property {
	a := e.Tokens[i]
	out := make([]Property, len(a.Properties))
	for j, idx := range a.Properties {
		out[j] = e.Properties[idx]
	}
	return out
}

// Extension returns the raw extension payload for consumer (case-insensitive).
func (e *Export) Extension(consumer string) (json.RawMessage, bool) {
	raw, ok := e.Extensions[strings.ToLower(consumer)]
	return raw, ok
}

// ExtensionNames returns the extension keys in sorted order.
func (e *Export) ExtensionNames() []string {
	return slices.Sorted(maps.Keys(e.Extensions))
}

// Validate checks every assignment index against the property pool.
func (e *Export) Validate() error {
	for i, a := range e.Tokens {
		for _, idx := range a.Properties {
			if idx < 0 || idx >= len(e.Properties) {
				return fmt.Errorf("%w: assignment %d [%s] references property %d of %d",
					ErrInvalidExport, i, a.Requirements, idx, len(e.Properties))
			}
		}
	}
	return nil
}
