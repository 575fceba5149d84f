/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/typescale/matrix"
	"bennypowers.dev/typescale/token"
)

func str(s string) *string { return &s }

func twoByThree(emptyFirst bool) matrix.TextStyle {
	return matrix.TextStyle{
		BaseName:   "Content",
		BaseTokens: "role:content",
		BaseKey:    "content",
		Groups: []matrix.Group{
			{
				IncludeEmptyOption: emptyFirst,
				Options: []matrix.Option{
					{Name: "SM", Tokens: "size:sm"},
					{Name: "H1", Tokens: "size:2xl weight:700", Key: "h1"},
				},
			},
			{
				NamePrefix: str(" "),
				Options: []matrix.Option{
					{Name: "Regular", Tokens: "weight:400"},
					{Name: "Bold", Tokens: "weight:700"},
					{Name: "Black", Tokens: "weight:900"},
				},
			},
		},
	}
}

func TestExpand_Cardinality(t *testing.T) {
	tests := []struct {
		name       string
		emptyFirst bool
		want       int
	}{
		{name: "no empty option", want: 6},
		{name: "empty option on first group", emptyFirst: true, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := twoByThree(tt.emptyFirst)
			entries, err := matrix.Expand(style)
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
			assert.Equal(t, tt.want, matrix.Cardinality(style))
		})
	}
}

func TestExpand_NamesAndOrder(t *testing.T) {
	entries, err := matrix.Expand(twoByThree(true))
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{
		"Content / SM Regular",
		"Content / SM Bold",
		"Content / SM Black",
		"Content / H1 Regular",
		"Content / H1 Bold",
		"Content / H1 Black",
		"Content Regular",
		"Content Bold",
		"Content Black",
	}, names)
}

func TestExpand_TokensAndKeys(t *testing.T) {
	entries, err := matrix.Expand(twoByThree(false))
	require.NoError(t, err)
	byName := map[string]matrix.Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	sm := byName["Content / SM Bold"]
	assert.Equal(t, "role:content size:sm weight:700", sm.Tokens.String())
	assert.Equal(t, "content size:sm weight:700", sm.Key.String())

	// later option tokens override earlier ones on the same key
	h1 := byName["Content / H1 Regular"]
	assert.Equal(t, "role:content size:2xl weight:400", h1.Tokens.String())
	// explicit key hides the option's tokens from the identity key
	assert.Equal(t, "content g1:h1 weight:400", h1.Key.String())
}

func TestExpand_EmptyOptionNaming(t *testing.T) {
	tests := []struct {
		name   string
		prefix *string
		suffix *string
		want   string
	}{
		{name: "folder separator keeps name", want: "UI"},
		{name: "space prefix gets marker", prefix: str(" "), want: "UI <base>"},
		{name: "wrapped prefix", prefix: str(" ("), suffix: str(")"), want: "UI (<base>)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := matrix.Expand(matrix.TextStyle{
				BaseName:   "UI",
				BaseTokens: "role:ui",
				Groups: []matrix.Group{{
					NamePrefix:         tt.prefix,
					NameSuffix:         tt.suffix,
					IncludeEmptyOption: true,
					Options:            []matrix.Option{{Name: "Italic", Tokens: "italic:true"}},
				}},
			})
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, tt.want, entries[1].Name)
			assert.Equal(t, "role:ui", entries[1].Tokens.String())
			assert.Equal(t, "role:ui", entries[1].Key.String())
		})
	}
}

func TestExpand_GroupKeyAndDescription(t *testing.T) {
	entries, err := matrix.Expand(matrix.TextStyle{
		BaseName:    "Content",
		BaseTokens:  "role:content",
		Description: "Body copy",
		Groups: []matrix.Group{{
			Key: "prose",
			Options: []matrix.Option{
				{Name: "Code", Tokens: "role:code", Key: "code", Description: "Inline code"},
			},
		}},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prose:code role:content", entries[0].Key.String())
	assert.Equal(t, "role:code", entries[0].Tokens.String())
	assert.Equal(t, "Body copy\nInline code", entries[0].Description)
}

func TestExpand_InvalidTokens(t *testing.T) {
	_, err := matrix.Expand(matrix.TextStyle{
		BaseName:   "Broken",
		BaseTokens: "role:ui",
		Groups: []matrix.Group{{
			Options: []matrix.Option{{Name: "Bad", Tokens: "a:b:c"}},
		}},
	})
	var ee *matrix.EntryError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "Broken", ee.Style)
	assert.Equal(t, "g1", ee.Group)
	assert.Equal(t, "Bad", ee.Option)
	assert.ErrorIs(t, err, token.ErrParse)
}

func TestResolve_CollectsAllFailures(t *testing.T) {
	entries, err := matrix.Expand(twoByThree(false))
	require.NoError(t, err)

	out, err := matrix.Resolve(entries, func(e matrix.Entry) (string, error) {
		if w, _ := e.Tokens.Value("weight"); w == "900" {
			return "", fmt.Errorf("no black weight")
		}
		return e.Name, nil
	})
	assert.Len(t, out, 4)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	errs := joined.Unwrap()
	require.Len(t, errs, 2)
	var ee *matrix.EntryError
	require.True(t, errors.As(errs[0], &ee))
	assert.Equal(t, "Content / SM Black", ee.Entry)
	assert.Contains(t, err.Error(), "Content / H1 Black")
}
