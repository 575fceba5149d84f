/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the typescale build: release version, VCS state
// and toolchain. The same string names typescale to MCP clients and to
// servers it fetches typography inputs from.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes one typescale binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"gitCommit"`
	Tag       string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"goVersion"`
}

// Current collects build information from ldflags, falling back to the
// module and VCS data the Go toolchain embeds.
func Current() BuildInfo {
	bi := BuildInfo{
		Commit:    GitCommit,
		Tag:       GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
		GoVersion: runtime.Version(),
	}

	var module string
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" {
			module = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "unknown" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildTime == "unknown" {
					bi.BuildTime = s.Value
				}
			case "vcs.modified":
				if GitDirty == "" {
					bi.Dirty = s.Value == "true"
				}
			}
		}
	}

	switch {
	case Version != "dev":
		bi.Version = Version
	case module != "":
		bi.Version = module
	case GitTag != "unknown" && GitCommit != "unknown":
		bi.Version = tagged(GitTag, GitCommit, bi.Dirty)
	default:
		bi.Version = "dev"
	}
	return bi
}

// tagged builds "<tag>-<short commit>[-dirty]", leaving out the commit when
// the tag already ends with it.
func tagged(tag, commit string, dirty bool) string {
	v := tag
	short := commit
	if len(short) > 7 {
		short = short[:7]
	}
	if short != "" && !strings.HasSuffix(tag, short) {
		v += "-" + short
	}
	if dirty {
		v += "-dirty"
	}
	return v
}

// String is the one-line form printed by `typescale version`.
func (bi BuildInfo) String() string {
	if bi.Commit == "unknown" || bi.Commit == "" {
		return bi.Version
	}
	short := bi.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	if strings.Contains(bi.Version, short) {
		return bi.Version
	}
	return bi.Version + " (commit " + short + ")"
}

// Get returns the version string.
func Get() string {
	return Current().Version
}

// UserAgent returns the User-Agent header for fetching remote inputs.
func UserAgent() string {
	bi := Current()
	return "typescale/" + bi.Version + " (" + bi.GoVersion + ")"
}
