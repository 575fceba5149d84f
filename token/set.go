/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Set is a normalized collection of tokens: at most one Kind and one Value per key.
//
// Sets are values. Mutating methods never touch storage shared with copies, so a Set
// can be passed around and stored in maps freely. The zero value is an empty set.
type Set struct {
	kind   string
	values []Token // sorted by Key, keys unique
}

// NewSet returns a set containing tokens. Later tokens replace earlier ones
// with the same discriminator.
func NewSet(tokens ...Token) Set {
	var s Set
	s.Append(tokens...)
	return s
}

// ParseSet splits s into tokens and collects them into a Set.
func ParseSet(s string) (Set, error) {
	tokens, err := Split(s)
	if err != nil {
		return Set{}, err
	}
	return NewSet(tokens...), nil
}

// MustParseSet is like ParseSet but panics on error.
func MustParseSet(s string) Set {
	set, err := ParseSet(s)
	if err != nil {
		panic(err)
	}
	return set
}

// Insert adds t, returning the token it replaced (same Kind slot or same key), if any.
func (s *Set) Insert(t Token) (Token, bool) {
	if t.IsKind() {
		prev := s.kind
		s.kind = t.Value
		if prev == "" {
			return Token{}, false
		}
		return Kind(prev), true
	}

	i, found := slices.BinarySearchFunc(s.values, t.Key, compareKey)
	next := make([]Token, 0, len(s.values)+1)
	next = append(next, s.values[:i]...)
	next = append(next, t)
	if found {
		prev := s.values[i]
		next = append(next, s.values[i+1:]...)
		s.values = next
		return prev, true
	}
	next = append(next, s.values[i:]...)
	s.values = next
	return Token{}, false
}

// Append inserts every token in order.
func (s *Set) Append(tokens ...Token) {
	for _, t := range tokens {
		s.Insert(t)
	}
}

// WithAppended returns a copy of s with tokens inserted. s is left unchanged.
func (s Set) WithAppended(tokens ...Token) Set {
	out := s
	out.Append(tokens...)
	return out
}

// Union returns a copy of s with every token of other inserted.
func (s Set) Union(other Set) Set {
	return s.WithAppended(other.Tokens()...)
}

// Kind returns the kind name, if the set has one.
func (s Set) Kind() (string, bool) {
	return s.kind, s.kind != ""
}

// Value returns the value stored under key.
func (s Set) Value(key string) (string, bool) {
	i, found := slices.BinarySearchFunc(s.values, key, compareKey)
	if !found {
		return "", false
	}
	return s.values[i].Value, true
}

// Len returns the number of tokens, counting the Kind as one.
func (s Set) Len() int {
	if s.kind != "" {
		return len(s.values) + 1
	}
	return len(s.values)
}

// IsEmpty reports whether the set holds no tokens.
func (s Set) IsEmpty() bool {
	return s.Len() == 0
}

// All iterates the Kind first (if any), then Values in key order.
func (s Set) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if s.kind != "" && !yield(Kind(s.kind)) {
			return
		}
		for _, t := range s.values {
			if !yield(t) {
				return
			}
		}
	}
}

// Tokens returns the tokens in iteration order.
func (s Set) Tokens() []Token {
	return slices.Collect(s.All())
}

// Equal reports whether both sets hold exactly the same tokens.
func (s Set) Equal(other Set) bool {
	return s.kind == other.kind && slices.Equal(s.values, other.values)
}

// ContainsAllOf reports whether every requirement in other is satisfied by s:
// other has no Kind or the same Kind as s, and each of other's values is present
// in s with an equal value. s may carry additional tokens.
func (s Set) ContainsAllOf(other Set) bool {
	if other.kind != "" && other.kind != s.kind {
		return false
	}
	for _, want := range other.values {
		have, ok := s.Value(want.Key)
		if !ok || have != want.Value {
			return false
		}
	}
	return true
}

// Explain is ContainsAllOf with diagnostics. It returns nil when s contains all of
// rule, otherwise a *MatchError listing every mismatch.
func (s Set) Explain(rule Set) error {
	var mismatches []Mismatch
	switch {
	case rule.kind == "":
	case s.kind == "":
		mismatches = append(mismatches, Mismatch{Reason: MissingKind, Expected: rule.kind})
	case s.kind != rule.kind:
		mismatches = append(mismatches, Mismatch{Reason: KindIsDifferent, Expected: rule.kind, Found: s.kind})
	}

	for _, want := range rule.values {
		have, ok := s.Value(want.Key)
		switch {
		case !ok:
			mismatches = append(mismatches, Mismatch{Reason: MissingValue, Key: want.Key, Expected: want.Value})
		case have != want.Value:
			mismatches = append(mismatches, Mismatch{Reason: ValueIsDifferent, Key: want.Key, Expected: want.Value, Found: have})
		}
	}

	if len(mismatches) == 0 {
		return nil
	}
	return &MatchError{Query: s, Rule: rule, Mismatches: mismatches}
}

// String joins the tokens with single spaces, in iteration order.
func (s Set) String() string {
	return s.Key(" ")
}

// Key joins the tokens with sep, in iteration order.
func (s Set) Key(sep string) string {
	parts := make([]string, 0, s.Len())
	for t := range s.All() {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, sep)
}

// canonical is an unambiguous encoding of s, usable as a map key even when
// token text contains separator characters.
func (s Set) canonical() string {
	var sb strings.Builder
	sb.WriteString(s.kind)
	for _, t := range s.values {
		sb.WriteByte(0x1e)
		sb.WriteString(t.Key)
		sb.WriteByte(0x1f)
		sb.WriteString(t.Value)
	}
	return sb.String()
}

// ID returns a string that is equal for two sets iff the sets are Equal.
func (s Set) ID() string {
	return s.canonical()
}

// GoString renders the set for %#v, e.g. token.Set{#text #size:lg}.
func (s Set) GoString() string {
	parts := make([]string, 0, s.Len())
	for t := range s.All() {
		parts = append(parts, "#"+t.String())
	}
	return fmt.Sprintf("token.Set{%s}", strings.Join(parts, " "))
}

// MarshalJSON encodes the set as an array of token strings.
func (s Set) MarshalJSON() ([]byte, error) {
	parts := make([]string, 0, s.Len())
	for t := range s.All() {
		parts = append(parts, t.String())
	}
	return json.Marshal(parts)
}

// UnmarshalJSON decodes an array of token strings.
func (s *Set) UnmarshalJSON(data []byte) error {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	var out Set
	for _, part := range parts {
		t, err := Parse(part)
		if err != nil {
			return err
		}
		out.Insert(t)
	}
	*s = out
	return nil
}

func compareKey(t Token, key string) int {
	return strings.Compare(t.Key, key)
}
