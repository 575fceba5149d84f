/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lookup

import (
	"errors"

	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

// Explanation is the outcome of matching one assignment against a query.
type Explanation struct {
	Rule         int                   `json:"rule"`
	Requirements token.Set             `json:"requirements"`
	Matched      bool                  `json:"matched"`
	Mismatches   []token.Mismatch      `json:"mismatches,omitempty"`
	Properties   []typography.Property `json:"properties"`
}

// ExplainRule reports how assignment i fares against q.
func (lk *Lookup) ExplainRule(q token.Set, i int) (Explanation, error) {
	err := lk.Explain(q, i)
	var me *token.MatchError
	switch {
	case err == nil:
	case errors.As(err, &me):
	default:
		return Explanation{}, err
	}

	ex := Explanation{
		Rule:         i,
		Requirements: lk.export.Tokens[i].Requirements,
		Matched:      err == nil,
		Properties:   lk.export.Resolve(i),
	}
	if me != nil {
		ex.Mismatches = me.Mismatches
	}
	return ex, nil
}

// ExplainCandidates explains every candidate of q in export order.
func (lk *Lookup) ExplainCandidates(q token.Set) []Explanation {
	candidates := lk.Candidates(q)
	out := make([]Explanation, 0, len(candidates))
	for _, i := range candidates {
		// candidate indices are always in range
		ex, _ := lk.ExplainRule(q, i)
		out = append(out, ex)
	}
	return out
}
