/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import tsfs "bennypowers.dev/typescale/fs"

// NewDefaultResolver creates a resolver chain that handles exec:, URLs,
// npm: and local paths. The rootDir anchors node_modules lookup, relative
// paths and command working directories.
func NewDefaultResolver(fs tsfs.FileSystem, rootDir string) Resolver {
	return NewChainResolver(
		NewExecResolver(rootDir),
		NewURLResolver(),
		NewNPMResolver(fs, rootDir),
		NewLocalResolver(rootDir),
	)
}
