/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"

	tsfs "bennypowers.dev/typescale/fs"
)

// NPMResolver resolves npm: specifiers to node_modules paths.
type NPMResolver struct {
	fs      tsfs.FileSystem
	rootDir string
}

// NewNPMResolver creates a resolver for npm: package specifiers.
// The rootDir is the starting directory for node_modules lookup.
func NewNPMResolver(fs tsfs.FileSystem, rootDir string) *NPMResolver {
	return &NPMResolver{
		fs:      fs,
		rootDir: rootDir,
	}
}

// Resolve walks up from rootDir looking for node_modules/<package>/<file>.
func (r *NPMResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	if parsed.Kind != KindNPM {
		return nil, fmt.Errorf("not an npm specifier: %s", spec)
	}

	dir := r.rootDir
	if !filepath.IsAbs(dir) {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = absDir
	}
	startDir := dir

	for {
		candidate := filepath.Join(dir, "node_modules", parsed.Package, parsed.File)
		if r.fs.Exists(candidate) {
			return &ResolvedFile{
				Specifier: spec,
				Path:      candidate,
				Kind:      KindNPM,
			}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("package not found: %s (looked in node_modules starting from %s)", parsed.Package, startDir)
}

// CanResolve returns true for npm: specifiers.
func (r *NPMResolver) CanResolve(spec string) bool {
	return KindOf(spec) == KindNPM
}
