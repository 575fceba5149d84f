/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the tag vocabulary used to describe and query typography rules.
//
// A Token is either a Kind ("text") or a keyed Value ("size:lg"). A Set holds at most one
// Kind and at most one Value per key, and always iterates in a canonical order: the Kind
// first, then Values sorted by key.
package token

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrParse indicates a malformed token string.
var ErrParse = errors.New("invalid token")

// Token is a single tag: a Kind when Key is empty, otherwise a Value.
type Token struct {
	// Key is the attribute name (e.g., "size"). Empty for Kind tokens.
	Key string

	// Value is the attribute value (e.g., "lg"), or the kind name for Kind tokens.
	Value string
}

// Kind returns a category discriminator token, e.g. Kind("text").
func Kind(name string) Token {
	return Token{Value: name}
}

// Value returns a keyed attribute token, e.g. Value("weight", "700").
func Value(key, value string) Token {
	return Token{Key: key, Value: value}
}

// IsKind reports whether t is a Kind token.
func (t Token) IsKind() bool {
	return t.Key == ""
}

// String returns the textual form: "kind" or "key:value".
func (t Token) String() string {
	if t.IsKind() {
		return t.Value
	}
	return t.Key + ":" + t.Value
}

// ParseError reports a substring that is not a valid token.
type ParseError struct {
	// Input is the offending substring, exactly as found.
	Input string

	// Reason describes what is wrong with Input.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"failed to parse %q as a token (%s): expected a value like weight:300, role:ui, or size:sm",
		e.Input, e.Reason,
	)
}

// Unwrap returns ErrParse so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Parse parses "kind" or "key:value".
func Parse(s string) (Token, error) {
	switch strings.Count(s, ":") {
	case 0:
		if s == "" {
			return Token{}, &ParseError{Input: s, Reason: "empty token"}
		}
		return Kind(s), nil
	case 1:
		key, value, _ := strings.Cut(s, ":")
		if key == "" || value == "" {
			return Token{}, &ParseError{Input: s, Reason: "key and value must both be present"}
		}
		return Value(key, value), nil
	default:
		return Token{}, &ParseError{Input: s, Reason: "more than one ':' separator"}
	}
}

// MustParse is like Parse but panics on error. Intended for literals in code and tests.
func MustParse(s string) Token {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Split parses a whitespace- or comma-separated token list.
// Blank input yields an empty slice and no error.
func Split(s string) ([]Token, error) {
	fields := strings.FieldsFunc(s, isSeparator)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		t, err := Parse(field)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}
