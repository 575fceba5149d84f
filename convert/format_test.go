/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"encoding/json"
	"testing"

	"bennypowers.dev/typescale/convert"
	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected convert.Format
		wantErr  bool
	}{
		{"export", convert.FormatExport, false},
		{"", convert.FormatExport, false},
		{"tokens", convert.FormatExport, false},
		{"figma", convert.FormatFigma, false},
		{"FIGMA", convert.FormatFigma, false},
		{"styles", convert.FormatStyles, false},
		{"text-styles", convert.FormatStyles, false},
		{"dtcg", convert.FormatDTCG, false},
		{"ts", convert.FormatTypeScript, false},
		{"js", convert.FormatJavaScript, false},
		{"lit-css", convert.FormatLit, false},
		{"css", convert.FormatCSS, false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatLookup_AllFormats(t *testing.T) {
	c := typography.NewCollector()
	c.PushSet(token.MustParseSet("text role:ui"), typography.NewFontFamily("Inter"))
	c.PushSet(token.MustParseSet("text role:ui size:sm"), typography.NewFontSize(12))
	c.SetExtension("figma", json.RawMessage(`{"FigmaTextStyles":[{"BaseName":"UI","BaseTokens":"role:ui size:sm","Groups":[]}]}`))
	lk := lookup.New(c.Build())

	for _, name := range convert.ValidFormats() {
		t.Run(name, func(t *testing.T) {
			data, err := convert.FormatLookup(lk, convert.Format(name), formatter.Options{})
			if err != nil {
				t.Fatalf("FormatLookup(%s) error: %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("FormatLookup(%s) produced no output", name)
			}
			if convert.Format(name).IsJSON() && !json.Valid(data) {
				t.Errorf("FormatLookup(%s) produced invalid JSON:\n%s", name, data)
			}
		})
	}
}

func TestFormatLookup_Styles(t *testing.T) {
	c := typography.NewCollector()
	c.PushSet(token.MustParseSet("text role:ui"), typography.NewFontFamily("Inter"))
	c.PushSet(token.MustParseSet("text role:ui size:sm"), typography.NewFontSize(12))
	c.SetExtension("Figma", json.RawMessage(`{"FigmaTextStyles":[{"BaseName":"UI","BaseTokens":"role:ui size:sm","Groups":[]}]}`))
	lk := lookup.New(c.Build())

	data, err := convert.FormatLookup(lk, convert.FormatStyles, formatter.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var styles []map[string]any
	if err := json.Unmarshal(data, &styles); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(styles) != 1 || styles[0]["name"] != "UI" || styles[0]["key"] != "role:ui size:sm" {
		t.Errorf("unexpected styles: %v", styles)
	}
}
