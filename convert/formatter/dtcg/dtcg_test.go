/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dtcg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/convert/formatter/dtcg"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

func TestFormat(t *testing.T) {
	c := typography.NewCollector()
	c.PushSet(token.MustParseSet("text role:ui"), typography.NewFontFamily("Inter"))
	c.PushSet(token.MustParseSet("text role:ui size:sm"),
		typography.NewFontSize(12), typography.NewLetterSpacing(0.25), typography.NewLineHeight(18))
	c.PushSet(token.MustParseSet("role:ui weight:700"), typography.NewFontSize(99))
	lk := lookup.New(c.Build())

	data, err := dtcg.New().Format(lk, formatter.Options{Prefix: "type"})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": {
			"ui": {
				"sm": {
					"$type": "typography",
					"$value": {
						"fontFamily": "Inter",
						"fontSize": {"value": 12, "unit": "px"},
						"lineHeight": 1.5,
						"letterSpacing": {"value": 0.25, "unit": "px"}
					},
					"$extensions": {"dev.typescale": {"tokens": ["text", "role:ui", "size:sm"]}}
				}
			}
		}
	}`, string(data))
}

func TestFormat_SkipsRolesWithoutFamily(t *testing.T) {
	c := typography.NewCollector()
	c.PushSet(token.MustParseSet("text role:ui size:sm"), typography.NewFontSize(12))
	data, err := dtcg.New().Format(lookup.New(c.Build()), formatter.Options{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestEntries_ExportOrder(t *testing.T) {
	c := typography.NewCollector()
	c.PushSet(token.MustParseSet("text role:ui"), typography.NewFontFamily("Inter"))
	c.PushSet(token.MustParseSet("text role:ui size:lg"), typography.NewFontSize(20))
	c.PushSet(token.MustParseSet("text role:ui size:sm"), typography.NewFontSize(12))

	entries := dtcg.Entries(lookup.New(c.Build()), formatter.Options{})
	require.Len(t, entries, 2)
	assert.Equal(t, "lg", entries[0].Size)
	assert.Equal(t, "sm", entries[1].Size)
	assert.Equal(t, "Inter", entries[1].Value.FontFamily)
	assert.Nil(t, entries[1].Value.LineHeight)
}
