/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"maps"
	"slices"
	"strings"
)

// Suffix composes a font style name from precedence-ordered fragments.
// The zero value is empty and ready to use.
type Suffix struct {
	parts map[int]string
}

// Set stores value at precedence, replacing any earlier value there.
func (s *Suffix) Set(precedence int, value string) {
	if s.parts == nil {
		s.parts = make(map[int]string)
	}
	s.parts[precedence] = value
}

// Len returns the number of stored fragments.
func (s *Suffix) Len() int {
	return len(s.parts)
}

// String joins the trimmed fragments in ascending precedence with single spaces.
func (s *Suffix) String() string {
	values := make([]string, 0, len(s.parts))
	for _, p := range slices.Sorted(maps.Keys(s.parts)) {
		if v := strings.TrimSpace(s.parts[p]); v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, " ")
}
