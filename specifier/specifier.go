/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses and resolves input specifiers.
//
// An input specifier names where a typography input comes from:
//
//	typography.yaml                       local file
//	npm:@scope/pkg/typography.json        file inside an installed npm package
//	https://example.com/typography.json   remote document
//	exec:deno run settings.ts             stdout of a command
package specifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindURL is an http or https URL.
	KindURL
	// KindExec is a command whose stdout is the input.
	KindExec
)

func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindNPM:
		return "npm"
	case KindURL:
		return "url"
	case KindExec:
		return "exec"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ExecPrefix introduces a command specifier.
const ExecPrefix = "exec:"

// Specifier represents a parsed input specifier.
type Specifier struct {
	Kind Kind

	// Package is the npm package name (e.g., "@scope/pkg" or "pkg").
	Package string

	// File is the local path, or the file path within the package.
	File string

	// URL is set for KindURL.
	URL string

	// Command is the argv for KindExec.
	Command []string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string. Only exec: specifiers with unbalanced
// quoting or no command fail.
func Parse(spec string) (*Specifier, error) {
	switch {
	case strings.HasPrefix(spec, ExecPrefix):
		argv, err := shlex.Split(strings.TrimPrefix(spec, ExecPrefix))
		if err != nil {
			return nil, fmt.Errorf("invalid command in %q: %w", spec, err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("invalid command in %q: empty command", spec)
		}
		return &Specifier{Kind: KindExec, Command: argv, Raw: spec}, nil

	case strings.HasPrefix(spec, "https://"), strings.HasPrefix(spec, "http://"):
		return &Specifier{Kind: KindURL, URL: spec, Raw: spec}, nil

	case strings.HasPrefix(spec, "npm:"):
		if matches := npmPattern.FindStringSubmatch(spec); len(matches) == 3 {
			return &Specifier{
				Kind:    KindNPM,
				Package: matches[1],
				File:    strings.TrimPrefix(matches[2], "/"),
				Raw:     spec,
			}, nil
		}
	}

	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}, nil
}

// KindOf returns the kind of spec without reporting command parse errors.
func KindOf(spec string) Kind {
	switch {
	case strings.HasPrefix(spec, ExecPrefix):
		return KindExec
	case strings.HasPrefix(spec, "https://"), strings.HasPrefix(spec, "http://"):
		return KindURL
	case npmPattern.MatchString(spec):
		return KindNPM
	default:
		return KindLocal
	}
}

// IsLocal returns true if this is a local file path.
func (s *Specifier) IsLocal() bool {
	return s.Kind == KindLocal
}

// IsRemote returns true if resolving this specifier leaves the filesystem.
func (s *Specifier) IsRemote() bool {
	return s.Kind == KindURL || s.Kind == KindExec
}
