/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch indicates that a query does not satisfy a rule.
var ErrNoMatch = errors.New("query does not match rule")

// MismatchReason classifies a single failed requirement.
type MismatchReason int

const (
	// MissingKind means the rule requires a Kind and the query has none.
	MissingKind MismatchReason = iota

	// KindIsDifferent means both have a Kind but they differ.
	KindIsDifferent

	// MissingValue means the rule requires a key the query does not carry.
	MissingValue

	// ValueIsDifferent means the query carries the key with another value.
	ValueIsDifferent
)

// String returns a short name for the reason.
func (r MismatchReason) String() string {
	switch r {
	case MissingKind:
		return "missing kind"
	case KindIsDifferent:
		return "kind is different"
	case MissingValue:
		return "missing value"
	case ValueIsDifferent:
		return "value is different"
	default:
		return "unknown"
	}
}

// Mismatch is one requirement of a rule that a query fails.
type Mismatch struct {
	Reason MismatchReason `json:"reason"`

	// Key is the value key involved. Empty for Kind mismatches.
	Key string `json:"key,omitempty"`

	// Expected is what the rule requires.
	Expected string `json:"expected"`

	// Found is what the query carries. Empty when missing.
	Found string `json:"found,omitempty"`
}

// String describes the mismatch in one line.
func (m Mismatch) String() string {
	switch m.Reason {
	case MissingKind:
		return fmt.Sprintf("missing kind %q", m.Expected)
	case KindIsDifferent:
		return fmt.Sprintf("expected kind %q, found %q", m.Expected, m.Found)
	case MissingValue:
		return fmt.Sprintf("missing %s:%s", m.Key, m.Expected)
	case ValueIsDifferent:
		return fmt.Sprintf("expected %s:%s, found %s:%s", m.Key, m.Expected, m.Key, m.Found)
	default:
		return m.Reason.String()
	}
}

// MatchError collects every mismatch between a query and a rule.
type MatchError struct {
	Query      Set
	Rule       Set
	Mismatches []Mismatch
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return fmt.Sprintf("[%s] does not match rule [%s]: %s", e.Query, e.Rule, strings.Join(parts, "; "))
}

// Unwrap returns ErrNoMatch so callers can use errors.Is.
func (e *MatchError) Unwrap() error {
	return ErrNoMatch
}
