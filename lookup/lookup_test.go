/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lookup_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

func push(c *typography.Collector, req string, ps ...typography.Property) {
	c.PushSet(token.MustParseSet(req), ps...)
}

// sampleLookup assignments, by index:
//
//	0 text role:ui size:lg
//	1 text role:ui
//	2 role:ui weight:700
//	3 (empty)
//	4 text role:code
//	5 text role:ui size:sm
//	6 italic:true role:ui
func sampleLookup() *lookup.Lookup {
	c := typography.NewCollector()
	push(c, "text role:ui size:lg", typography.NewFontSize(20))
	push(c, "text role:ui", typography.NewFontFamily("Inter"))
	push(c, "role:ui weight:700", typography.NewFontSize(99))
	push(c, "", typography.NewLetterSpacing(0))
	push(c, "text role:code", typography.NewFontFamily("IBM Plex Mono"))
	push(c, "text role:ui size:sm", typography.NewFontSize(12))
	push(c, "role:ui italic:true", typography.NewLineHeight(1))
	return lookup.New(c.Build())
}

func TestQuery_OrderingPolicy(t *testing.T) {
	lk := sampleLookup()
	res := lk.Query(token.MustParseSet("text role:ui size:lg weight:700"))

	// cardinality 0, 2, 2, 3; the tie keeps export order
	if diff := cmp.Diff([]int{3, 1, 2, 0}, res.Matches); diff != "" {
		t.Errorf("Matches mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, res.Properties, 4)
	assert.Equal(t, typography.NewLetterSpacing(0), res.Properties[0])
	assert.Equal(t, typography.NewFontFamily("Inter"), res.Properties[1])
	assert.Equal(t, typography.NewFontSize(99), res.Properties[2])
	assert.Equal(t, typography.NewFontSize(20), res.Properties[3])
	assert.Equal(t, "text role:ui size:lg weight:700", res.Required.String())
}

func TestQuery_NoMatchesHasOnlyUnconditional(t *testing.T) {
	lk := sampleLookup()
	res := lk.QueryTokens(token.Value("role", "nope"))
	assert.Equal(t, []int{3}, res.Matches)
	assert.Equal(t, "", res.Required.String())
}

func TestQuery_KindMustMatch(t *testing.T) {
	lk := sampleLookup()
	res := lk.Query(token.MustParseSet("role:ui size:lg"))
	assert.Equal(t, []int{3}, res.Matches)
}

func TestQuery_Deterministic(t *testing.T) {
	lk := sampleLookup()
	q := token.MustParseSet("text role:ui size:lg weight:700 italic:true")
	want := lk.Query(q)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := lk.Query(q)
			assert.Equal(t, want.Matches, got.Matches)
		}()
	}
	wg.Wait()
}

func TestCandidates(t *testing.T) {
	lk := sampleLookup()
	got := lk.Candidates(token.MustParseSet("role:code"))
	assert.Equal(t, []int{3, 4}, got)
}

func TestExplain(t *testing.T) {
	lk := sampleLookup()
	q := token.MustParseSet("text role:ui size:lg")

	assert.NoError(t, lk.Explain(q, 0))

	err := lk.Explain(q, 2)
	var me *token.MatchError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, []token.Mismatch{{Reason: token.MissingValue, Key: "weight", Expected: "700"}}, me.Mismatches)

	assert.ErrorIs(t, lk.Explain(q, 7), lookup.ErrAssignmentIndex)
	assert.ErrorIs(t, lk.Explain(q, -1), lookup.ErrAssignmentIndex)
}

func TestExplainRule(t *testing.T) {
	lk := sampleLookup()
	q := token.MustParseSet("text role:ui size:sm")

	ex, err := lk.ExplainRule(q, 0)
	require.NoError(t, err)
	assert.False(t, ex.Matched)
	assert.Equal(t, []token.Mismatch{{Reason: token.ValueIsDifferent, Key: "size", Expected: "lg", Found: "sm"}}, ex.Mismatches)
	assert.Equal(t, []typography.Property{typography.NewFontSize(20)}, ex.Properties)

	ex, err = lk.ExplainRule(q, 5)
	require.NoError(t, err)
	assert.True(t, ex.Matched)
	assert.Empty(t, ex.Mismatches)

	_, err = lk.ExplainRule(q, 99)
	assert.ErrorIs(t, err, lookup.ErrAssignmentIndex)
}

func TestExplainCandidates(t *testing.T) {
	lk := sampleLookup()
	exs := lk.ExplainCandidates(token.MustParseSet("role:code"))
	require.Len(t, exs, 2)
	assert.Equal(t, 3, exs[0].Rule)
	assert.True(t, exs[0].Matched)
	assert.Equal(t, 4, exs[1].Rule)
	assert.False(t, exs[1].Matched)
}
