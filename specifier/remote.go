/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"net/url"
)

// URLResolver validates http and https specifiers.
type URLResolver struct{}

// NewURLResolver creates a resolver for URL specifiers.
func NewURLResolver() *URLResolver {
	return &URLResolver{}
}

// Resolve checks that spec is an absolute URL with a host.
func (r *URLResolver) Resolve(spec string) (*ResolvedFile, error) {
	u, err := url.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", spec, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid URL %q: missing host", spec)
	}
	return &ResolvedFile{
		Specifier: spec,
		URL:       u.String(),
		Kind:      KindURL,
	}, nil
}

// CanResolve returns true for http and https URLs.
func (r *URLResolver) CanResolve(spec string) bool {
	return KindOf(spec) == KindURL
}

// ExecResolver splits exec: specifiers into an argv run from rootDir.
type ExecResolver struct {
	rootDir string
}

// NewExecResolver creates a resolver for exec: specifiers.
func NewExecResolver(rootDir string) *ExecResolver {
	return &ExecResolver{rootDir: rootDir}
}

// Resolve splits the command with shell quoting rules.
func (r *ExecResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	if parsed.Kind != KindExec {
		return nil, fmt.Errorf("not an exec specifier: %s", spec)
	}
	return &ResolvedFile{
		Specifier: spec,
		Path:      r.rootDir,
		Command:   parsed.Command,
		Kind:      KindExec,
	}, nil
}

// CanResolve returns true for exec: specifiers.
func (r *ExecResolver) CanResolve(spec string) bool {
	return KindOf(spec) == KindExec
}
