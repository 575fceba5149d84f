/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package matrix expands a text-style option tree into concrete named entries.
//
// Starting from a base entry, each group multiplies the entries collected so far by
// its options (plus one pass-through entry when the group includes an empty option).
// Each entry carries the tokens to query with and an identity key that stays stable
// when options declare explicit keys.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/typescale/token"
)

// Naming defaults for groups that do not set NamePrefix / NameSuffix.
const (
	DefaultNamePrefix = " / "
	DefaultNameSuffix = ""
	BaseMarker        = "<base>"
)

// TextStyle is the root of an option tree.
type TextStyle struct {
	BaseName    string  `json:"BaseName"`
	BaseTokens  string  `json:"BaseTokens"`
	BaseKey     string  `json:"BaseKey,omitempty"`
	Description string  `json:"Description,omitempty"`
	Groups      []Group `json:"Groups"`
}

// Group is one dimension of the matrix.
type Group struct {
	// Key names the group in explicit identity keys. Defaults to g<N>, N 1-based.
	Key                string   `json:"Key,omitempty"`
	Description        string   `json:"Description,omitempty"`
	NamePrefix         *string  `json:"NamePrefix,omitempty"`
	NameSuffix         *string  `json:"NameSuffix,omitempty"`
	IncludeEmptyOption bool     `json:"IncludeEmptyOption,omitempty"`
	Options            []Option `json:"Options"`
}

// Option is one value along a group's dimension.
type Option struct {
	Name        string `json:"Name"`
	Tokens      string `json:"Tokens"`
	Key         string `json:"Key,omitempty"`
	Description string `json:"Description,omitempty"`
}

// Entry is one concrete expansion of a TextStyle.
type Entry struct {
	// Style is the BaseName of the TextStyle this entry came from.
	Style       string
	Name        string
	Description string
	Tokens      token.Set
	Key         token.Set
}

// Prefix returns the effective name prefix.
func (g Group) Prefix() string {
	if g.NamePrefix != nil {
		return *g.NamePrefix
	}
	return DefaultNamePrefix
}

// Suffix returns the effective name suffix.
func (g Group) Suffix() string {
	if g.NameSuffix != nil {
		return *g.NameSuffix
	}
	return DefaultNameSuffix
}

// KeyName returns the group key used for explicit option keys at 0-based position i.
func (g Group) KeyName(i int) string {
	if g.Key != "" {
		return g.Key
	}
	return fmt.Sprintf("g%d", i+1)
}

// Cardinality returns the number of entries Expand produces for style.
func Cardinality(style TextStyle) int {
	n := 1
	for _, g := range style.Groups {
		width := len(g.Options)
		if g.IncludeEmptyOption {
			width++
		}
		n *= width
	}
	return n
}

// Expand folds style's groups into concrete entries.
//
// For each entry collected so far, options are emitted in declared order followed
// by the empty option, if any.
func Expand(style TextStyle) ([]Entry, error) {
	baseTokens, err := token.ParseSet(style.BaseTokens)
	if err != nil {
		return nil, &EntryError{Style: style.BaseName, Entry: style.BaseName, Err: err}
	}
	baseKey := baseTokens
	if style.BaseKey != "" {
		baseKey = token.NewSet(token.Kind(style.BaseKey))
	}

	entries := []Entry{{
		Style:       style.BaseName,
		Name:        style.BaseName,
		Description: style.Description,
		Tokens:      baseTokens,
		Key:         baseKey,
	}}

	for gi, group := range style.Groups {
		parsed := make([][]token.Token, len(group.Options))
		for oi, opt := range group.Options {
			ts, err := token.Split(opt.Tokens)
			if err != nil {
				return nil, &EntryError{
					Style:  style.BaseName,
					Group:  group.KeyName(gi),
					Option: opt.Name,
					Err:    err,
				}
			}
			parsed[oi] = ts
		}

		prefix, suffix := group.Prefix(), group.Suffix()
		folder := strings.Contains(prefix, "/")
		width := len(group.Options)
		if group.IncludeEmptyOption {
			width++
		}

		next := make([]Entry, 0, len(entries)*width)
		for _, orig := range entries {
			for oi, opt := range group.Options {
				key := orig.Key.WithAppended(parsed[oi]...)
				if opt.Key != "" {
					key = orig.Key.WithAppended(token.Value(group.KeyName(gi), opt.Key))
				}
				next = append(next, Entry{
					Style:       orig.Style,
					Name:        orig.Name + prefix + opt.Name + suffix,
					Description: joinDescription(orig.Description, opt.Description),
					Tokens:      orig.Tokens.WithAppended(parsed[oi]...),
					Key:         key,
				})
			}
			if group.IncludeEmptyOption {
				empty := orig
				if !folder {
					empty.Name = orig.Name + prefix + BaseMarker + suffix
				}
				next = append(next, empty)
			}
		}
		entries = next
	}
	return entries, nil
}

// ExpandAll expands every style, stopping at the first malformed one.
func ExpandAll(styles []TextStyle) ([]Entry, error) {
	var out []Entry
	for _, style := range styles {
		entries, err := Expand(style)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

// Resolve runs fn over every entry. Failing entries do not stop the batch: every
// failure is wrapped in an *EntryError and all of them are returned joined, along
// with the results of the entries that succeeded.
func Resolve[R any](entries []Entry, fn func(Entry) (R, error)) ([]R, error) {
	out := make([]R, 0, len(entries))
	var errs []error
	for _, e := range entries {
		r, err := fn(e)
		if err != nil {
			errs = append(errs, &EntryError{Style: e.Style, Entry: e.Name, Err: err})
			continue
		}
		out = append(out, r)
	}
	return out, errors.Join(errs...)
}

func joinDescription(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
