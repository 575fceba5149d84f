/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package js_test

import (
	"strings"
	"testing"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/convert/formatter/js"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

func sampleLookup() *lookup.Lookup {
	c := typography.NewCollector()
	c.PushSet(token.MustParseSet("text role:ui"), typography.NewFontFamily("Inter"))
	c.PushSet(token.MustParseSet("text role:ui size:sm"), typography.NewFontSize(12), typography.NewLineHeight(18))
	return lookup.New(c.Build())
}

func TestFormat_TypeScript(t *testing.T) {
	data, err := js.New().Format(sampleLookup(), formatter.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"// Generated by typescale. Do not edit.",
		"",
		"/** text role:ui size:sm */",
		"export const uiSm = {",
		`  fontFamily: "Inter",`,
		`  fontSize: "12px",`,
		"  lineHeight: 1.5,",
		"} as const;",
		"",
	}, "\n")
	if string(data) != want {
		t.Errorf("Format() =\n%s\nwant\n%s", data, want)
	}
}

func TestFormat_WithPrefix(t *testing.T) {
	data, err := js.New().Format(sampleLookup(), formatter.Options{Prefix: "type"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "export const typeUiSm = {") {
		t.Errorf("expected prefixed name:\n%s", data)
	}
}

func TestFormat_CJSJSDoc(t *testing.T) {
	f := js.NewWithOptions(js.Options{Module: js.ModuleCJS, Types: js.TypesJSDoc})
	data, err := f.Format(sampleLookup(), formatter.Options{})
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"@typedef {object} TextStyle",
		"/** @type {Readonly<TextStyle>} */\nexports.uiSm = Object.freeze({",
		"});\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		opts     js.Options
		expected string
	}{
		{js.Options{}, ".ts"},
		{js.Options{Types: js.TypesJSDoc}, ".js"},
		{js.Options{Module: js.ModuleCJS}, ".cts"},
		{js.Options{Module: js.ModuleCJS, Types: js.TypesJSDoc}, ".cjs"},
	}
	for _, tt := range tests {
		if got := js.NewWithOptions(tt.opts).Extension(); got != tt.expected {
			t.Errorf("Extension(%+v) = %q, want %q", tt.opts, got, tt.expected)
		}
	}
}
