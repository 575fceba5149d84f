/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lookup resolves token queries against a typography Export.
//
// An assignment matches a query when the query contains all of the assignment's
// requirements. Matches are merged in ascending order of requirement-set size,
// ties broken by export order, so more specific rules come later and override
// earlier ones for a later-wins consumer.
package lookup

import (
	"errors"
	"fmt"
	"slices"

	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

// ErrAssignmentIndex indicates an assignment index outside the export.
var ErrAssignmentIndex = errors.New("assignment index out of range")

// Lookup is a read-only query view over an Export. Safe for concurrent use.
type Lookup struct {
	export        *typography.Export
	byToken       map[token.Token][]int
	unconditional []int
}

// Result is the merged outcome of a query.
type Result struct {
	// Properties are the matched properties, flattened in merge order.
	Properties []typography.Property `json:"properties"`

	// Required is the union of every matched requirement set.
	Required token.Set `json:"required"`

	// Matches are the matched assignment indices in merge order.
	Matches []int `json:"matches"`
}

// New builds a Lookup over exp. exp must not be modified afterwards.
func New(exp *typography.Export) *Lookup {
	lk := &Lookup{
		export:  exp,
		byToken: make(map[token.Token][]int),
	}
	for i, a := range exp.Tokens {
		if a.Requirements.IsEmpty() {
			lk.unconditional = append(lk.unconditional, i)
			continue
		}
		for t := range a.Requirements.All() {
			lk.byToken[t] = append(lk.byToken[t], i)
		}
	}
	return lk
}

// Export returns the underlying export.
func (lk *Lookup) Export() *typography.Export {
	return lk.export
}

// Len returns the number of assignments.
func (lk *Lookup) Len() int {
	return len(lk.export.Tokens)
}

// Candidates returns, in export order, every assignment that shares at least one
// token with q, plus every assignment with no requirements. Any match is a candidate.
func (lk *Lookup) Candidates(q token.Set) []int {
	seen := make(map[int]struct{})
	out := slices.Clone(lk.unconditional)
	for _, i := range out {
		seen[i] = struct{}{}
	}
	for t := range q.All() {
		for _, i := range lk.byToken[t] {
			if _, ok := seen[i]; ok {
				continue
			}
			seen[i] = struct{}{}
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out
}

// Query returns every assignment matched by q, merged by the ordering policy.
func (lk *Lookup) Query(q token.Set) Result {
	var matches []int
	for _, i := range lk.Candidates(q) {
		if q.ContainsAllOf(lk.export.Tokens[i].Requirements) {
			matches = append(matches, i)
		}
	}
	slices.SortStableFunc(matches, func(a, b int) int {
		return lk.export.Tokens[a].Requirements.Len() - lk.export.Tokens[b].Requirements.Len()
	})

	res := Result{Properties: []typography.Property{}, Matches: []int{}}
	for _, i := range matches {
		a := lk.export.Tokens[i]
		res.Required = res.Required.Union(a.Requirements)
		for _, idx := range a.Properties {
			res.Properties = append(res.Properties, lk.export.Properties[idx])
		}
		res.Matches = append(res.Matches, i)
	}
	return res
}

// QueryTokens is Query over a token list.
func (lk *Lookup) QueryTokens(ts ...token.Token) Result {
	return lk.Query(token.NewSet(ts...))
}

// Explain reports why assignment i does or does not match q.
// It returns nil on a match and a *token.MatchError otherwise.
func (lk *Lookup) Explain(q token.Set, i int) error {
	if i < 0 || i >= len(lk.export.Tokens) {
		return fmt.Errorf("%w: %d (export has %d)", ErrAssignmentIndex, i, len(lk.export.Tokens))
	}
	return q.Explain(lk.export.Tokens[i].Requirements)
}
