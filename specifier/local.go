/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "path/filepath"

// LocalResolver handles local filesystem paths.
type LocalResolver struct {
	rootDir string
}

// NewLocalResolver creates a resolver that joins relative paths onto rootDir.
// An empty rootDir leaves paths unchanged.
func NewLocalResolver(rootDir string) *LocalResolver {
	return &LocalResolver{rootDir: rootDir}
}

// Resolve returns the local path.
func (r *LocalResolver) Resolve(spec string) (*ResolvedFile, error) {
	path := spec
	if r.rootDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.rootDir, path)
	}
	return &ResolvedFile{
		Specifier: spec,
		Path:      path,
		Kind:      KindLocal,
	}, nil
}

// CanResolve returns true for paths that are not npm, URL or exec specifiers.
func (r *LocalResolver) CanResolve(spec string) bool {
	return KindOf(spec) == KindLocal
}
