/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/typescale/config"
	"bennypowers.dev/typescale/convert"
	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/internal/mapfs"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/parser"
	"bennypowers.dev/typescale/testutil"
	"bennypowers.dev/typescale/token"
)

func buildFixture(t *testing.T) *lookup.Lookup {
	t.Helper()
	in, err := parser.NewInputParser().Parse(
		testutil.LoadFixtureFile(t, "fixtures/input/basic/typography.yaml"),
		parser.Options{},
	)
	require.NoError(t, err)
	lk, err := convert.Build(in)
	require.NoError(t, err)
	return lk
}

func TestBuild_BasicFixture(t *testing.T) {
	lk := buildFixture(t)
	assert.Positive(t, lk.Len())

	res := lk.Query(token.MustParseSet("text role:ui size:base"))
	assert.NotEmpty(t, res.Properties)
	assert.True(t, res.Required.ContainsAllOf(token.MustParseSet("text role:ui size:base")))
}

func TestParseOutputSpec(t *testing.T) {
	tests := []struct {
		input   string
		want    config.OutputSpec
		wantErr bool
	}{
		{"figma:dist/figma.json", config.OutputSpec{Format: "figma", Path: "dist/figma.json"}, false},
		{"dtcg:tokens.json", config.OutputSpec{Format: "dtcg", Path: "tokens.json"}, false},
		{"export", config.OutputSpec{}, true},
		{"figma:", config.OutputSpec{}, true},
		{"scss:tokens.scss", config.OutputSpec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.ParseOutputSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteOutputs(t *testing.T) {
	lk := buildFixture(t)

	mfs := mapfs.New()
	var log bytes.Buffer
	err := convert.WriteOutputs(mfs, "/project", lk, []config.OutputSpec{
		{Format: "export", Path: "dist/typography.json"},
		{Format: "dtcg", Path: "dist/tokens.json", Prefix: "type"},
	}, formatter.Options{}, &log)
	require.NoError(t, err)

	assert.Equal(t, []string{"/project/dist/tokens.json", "/project/dist/typography.json"}, mfs.Files())
	assert.Equal(t, "Wrote dist/typography.json\nWrote dist/tokens.json\n", log.String())

	data, err := mfs.ReadFile("/project/dist/tokens.json")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "type")
}

func TestWriteOutputs_ContinuesPastFailures(t *testing.T) {
	lk := buildFixture(t)

	mfs := mapfs.New()
	var log bytes.Buffer
	err := convert.WriteOutputs(mfs, "/project", lk, []config.OutputSpec{
		{Format: "scss", Path: "tokens.scss"},
		{Format: "figma", Path: "figma.json"},
	}, formatter.Options{}, &log)
	require.EqualError(t, err, "failed to generate 1 output(s)")
	assert.Equal(t, []string{"/project/figma.json"}, mfs.Files())
	assert.Contains(t, log.String(), "Error parsing format for tokens.scss")
}
