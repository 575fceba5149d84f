/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/mitchellh/hashstructure/v2"

	"bennypowers.dev/typescale/token"
)

type rule struct {
	requirements token.Set
	properties   []Property
}

// Collector accumulates rules keyed by their exact requirement set.
// It is not safe for concurrent use.
type Collector struct {
	index      map[string]int
	rules      []rule
	extensions map[string]json.RawMessage
	built      bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		index:      make(map[string]int),
		extensions: make(map[string]json.RawMessage),
	}
}

// Push appends p to the rule for req.
func (c *Collector) Push(req []token.Token, p Property) {
	c.PushAll(req, p)
}

// PushAll appends ps to the rule for req. Repeated pushes to the same
// requirement set accumulate in push order.
func (c *Collector) PushAll(req []token.Token, ps ...Property) {
	c.PushSet(token.NewSet(req...), ps...)
}

// PushSet is PushAll for an already-built set.
func (c *Collector) PushSet(req token.Set, ps ...Property) {
	if c.built {
		panic("typography: push to a Collector after Build")
	}
	id := req.ID()
	i, ok := c.index[id]
	if !ok {
		i = len(c.rules)
		c.index[id] = i
		c.rules = append(c.rules, rule{requirements: req})
	}
	c.rules[i].properties = append(c.rules[i].properties, ps...)
}

// SetExtension stores a consumer payload, keyed by lower-cased name.
func (c *Collector) SetExtension(name string, raw json.RawMessage) {
	if c.built {
		panic("typography: extension set on a Collector after Build")
	}
	c.extensions[strings.ToLower(name)] = raw
}

// Len returns the number of distinct requirement sets collected.
func (c *Collector) Len() int {
	return len(c.rules)
}

// Build freezes the collector and returns the deduplicated Export.
func (c *Collector) Build() *Export {
	c.built = true

	exp := &Export{
		Properties: []Property{},
		Tokens:     make([]Assignment, 0, len(c.rules)),
		Extensions: make(map[string]json.RawMessage, len(c.extensions)),
	}
	maps.Copy(exp.Extensions, c.extensions)

	buckets := make(map[uint64][]int)
	intern := func(p Property) int {
		// hash collisions are resolved by Equal
		h, err := hashstructure.Hash(p.hashKey(), hashstructure.FormatV2, nil)
		if err != nil {
			h = 0
		}
		for _, idx := range buckets[h] {
			if exp.Properties[idx].Equal(p) {
				return idx
			}
		}
		idx := len(exp.Properties)
		exp.Properties = append(exp.Properties, p)
		buckets[h] = append(buckets[h], idx)
		return idx
	}

	for _, r := range c.rules {
		idxs := make([]int, len(r.properties))
		for i, p := range r.properties {
			idxs[i] = intern(p)
		}
		exp.Tokens = append(exp.Tokens, Assignment{Requirements: r.requirements, Properties: idxs})
	}
	return exp
}
