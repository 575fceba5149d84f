/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/typescale/convert/formatter/figma"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Body Text", "body-text"},
		{"UI / Small", "ui-small"},
		{"heading.display", "heading-display"},
		{"UPPERCASE", "uppercase"},
		{"with_underscores", "with-underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := slugify(tt.input)
			if result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"body", "Body"},
		{"code blocks", "Code Blocks"},
		{"UI", "UI"},
		{"display XL", "Display XL"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatPx(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{12, "12px"},
		{17.5, "17.5px"},
		{-0.25, "-0.25px"},
	}
	for _, tt := range tests {
		if got := FormatPx(tt.input); got != tt.expected {
			t.Errorf("FormatPx(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func sampleStyles() []figma.TextStyle {
	lh := 16.0
	return []figma.TextStyle{
		{
			Name:               "UI / Small",
			Key:                "role:ui size:sm",
			FamilyNameAndStyle: [2]string{"Inter", "Regular"},
			FontSizePx:         12,
			LineHeightPx:       &lh,
		},
		{
			Name:               "Code / Base",
			Key:                "role:code size:base",
			FamilyNameAndStyle: [2]string{"IBM Plex Mono", "Regular"},
			FontSizePx:         14,
		},
	}
}

func TestComputeStyleRows(t *testing.T) {
	rows := ComputeStyleRows(sampleStyles())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Group != "UI" {
		t.Errorf("Group = %q, want %q", rows[0].Group, "UI")
	}
	if rows[0].LineHeight != "16px" {
		t.Errorf("LineHeight = %q, want %q", rows[0].LineHeight, "16px")
	}
	if rows[1].LetterSpacing != "-" {
		t.Errorf("LetterSpacing = %q, want %q", rows[1].LetterSpacing, "-")
	}
}

func TestStylesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := StylesTable(&buf, ComputeStyleRows(sampleStyles())); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "12px / 16px / -") {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestStylesTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := StylesTable(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestStylesMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := StylesMarkdown(&buf, ComputeStyleRows(sampleStyles())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"## UI {#ui}",
		"## Code {#code}",
		"`role:ui size:sm`",
		"IBM Plex Mono Regular",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "## UI") > strings.Index(out, "## Code") {
		t.Error("groups should keep first-occurrence order")
	}
}

func TestQueryTable(t *testing.T) {
	res := lookup.Result{
		Properties: []typography.Property{
			typography.NewFontFamily("Inter"),
			typography.NewFontSize(12),
		},
		Required: token.MustParseSet("text role:ui size:sm"),
	}
	var buf bytes.Buffer
	if err := QueryTable(&buf, res); err != nil {
		t.Fatal(err)
	}
	want := "FontFamily  Inter\n" +
		"FontSize    12px\n" +
		"Required    text role:ui size:sm\n"
	if buf.String() != want {
		t.Errorf("QueryTable =\n%s\nwant\n%s", buf.String(), want)
	}
}
