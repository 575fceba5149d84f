/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package explain

import (
	"bytes"
	"testing"

	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
)

func TestText(t *testing.T) {
	explanations := []lookup.Explanation{
		{Rule: 1, Requirements: token.MustParseSet("text role:ui"), Matched: true},
		{
			Rule:         4,
			Requirements: token.MustParseSet("text role:ui size:lg"),
			Mismatches: []token.Mismatch{
				{Reason: token.ValueIsDifferent, Key: "size", Expected: "lg", Found: "sm"},
			},
		},
	}

	var buf bytes.Buffer
	if err := Text(&buf, explanations); err != nil {
		t.Fatal(err)
	}
	want := "#1 [text role:ui] matches\n" +
		"#4 [text role:ui size:lg] no match\n" +
		"    expected size:lg, found size:sm\n"
	if buf.String() != want {
		t.Errorf("Text() =\n%s\nwant\n%s", buf.String(), want)
	}
}
