/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "fmt"

// ResolvedFile preserves both the original specifier and where its content lives.
type ResolvedFile struct {
	// Specifier is the original specifier (e.g., "npm:@rhds/typography/settings.json").
	Specifier string

	// Path is the filesystem path for KindLocal and KindNPM, and the
	// working directory for KindExec.
	Path string

	// URL is set for KindURL.
	URL string

	// Command is the argv for KindExec.
	Command []string

	Kind Kind
}

// Resolver resolves specifiers.
type Resolver interface {
	// Resolve resolves a specifier to a ResolvedFile.
	Resolve(spec string) (*ResolvedFile, error)

	// CanResolve returns true if this resolver can handle the given specifier.
	CanResolve(spec string) bool
}

// ChainResolver tries multiple resolvers in order.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a resolver that tries each resolver in order.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve delegates to the first resolver that can handle spec.
func (c *ChainResolver) Resolve(spec string) (*ResolvedFile, error) {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return r.Resolve(spec)
		}
	}
	return nil, fmt.Errorf("no resolver found for specifier: %s", spec)
}

// CanResolve returns true if any resolver can handle the specifier.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}
