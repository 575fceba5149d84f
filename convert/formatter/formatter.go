/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for output formatters.
package formatter

import (
	"strings"
	"unicode"

	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

// DefaultQueryKind is the Kind added to queries that carry none.
const DefaultQueryKind = typography.KindText

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders the export behind lk in the target format.
	Format(lk *lookup.Lookup, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// QueryKind seeds text-style queries that carry no Kind. Empty means DefaultQueryKind.
	QueryKind string

	// Prefix is added to output token group names.
	Prefix string
}

// SeedQuery returns q with the configured Kind added when q has none.
func (o Options) SeedQuery(q token.Set) token.Set {
	if _, ok := q.Kind(); ok {
		return q
	}
	kind := o.QueryKind
	if kind == "" {
		kind = DefaultQueryKind
	}
	return q.WithAppended(token.Kind(kind))
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	words := SplitIntoWords(s)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		sb.WriteString(strings.ToUpper(w[:1]) + strings.ToLower(w[1:]))
	}
	return sb.String()
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

// SplitIntoWords splits a string on separators, punctuation and camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	prevLower := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
			prevLower = false
		case unicode.IsUpper(r) && prevLower:
			flush()
			current.WriteRune(r)
			prevLower = false
		default:
			current.WriteRune(r)
			prevLower = unicode.IsLower(r)
		}
	}
	flush()

	return words
}
