/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"regexp"
	"strings"
	"unicode"
)

// Identity keys are embedded in Figma style descriptions as "((key))". Older
// descriptions used "(#key-parts#)".
var (
	descriptionKeyV1 = regexp.MustCompile(`\s*\(\(([^\)]+)\)\)`)
	descriptionKeyV0 = regexp.MustCompile(`\s*\(#(#?[\w:]+(?:-#?[\w:]+)+)#\)`)
)

// DescriptionKey extracts the identity key embedded in a style description.
func DescriptionKey(description string) (string, bool) {
	if m := descriptionKeyV1.FindStringSubmatch(description); m != nil {
		return m[1], true
	}
	if m := descriptionKeyV0.FindStringSubmatch(description); m != nil {
		return m[1], true
	}
	return "", false
}

// InsertDescriptionKey replaces any embedded key in description with key,
// appending it after a blank line when there is other text.
func InsertDescriptionKey(description, key string) string {
	updated := descriptionKeyV1.ReplaceAllString(description, "")
	if loc := descriptionKeyV0.FindStringIndex(updated); loc != nil {
		updated = updated[:loc[0]] + updated[loc[1]:]
	}
	updated = strings.TrimRightFunc(updated, unicode.IsSpace)
	if updated != "" {
		updated += "\n\n"
	}
	return updated + "((" + key + "))"
}
