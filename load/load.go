/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading typography inputs.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"bennypowers.dev/typescale/config"
	"bennypowers.dev/typescale/fs"
	"bennypowers.dev/typescale/internal/logger"
	"bennypowers.dev/typescale/parser"
	"bennypowers.dev/typescale/specifier"
	"bennypowers.dev/typescale/typography"
)

var (
	// ErrNoInputs is returned when neither arguments nor config name an input.
	ErrNoInputs = errors.New("no inputs specified and no inputs found in config")

	// ErrEmptyTypography is returned when the merged inputs declare no families
	// and no text roles, which would generate an empty export.
	ErrEmptyTypography = errors.New("inputs declare no families and no text roles")
)

// Options configures how inputs are loaded.
type Options struct {
	// Root is the directory for config lookup and local resolution.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Config overrides the config file found under Root.
	Config *config.Config

	// Fetcher loads URL inputs. Defaults to an HTTPFetcher.
	Fetcher Fetcher

	// Runner runs exec: inputs. Defaults to a CommandRunner.
	Runner Runner

	// Timeout bounds each URL fetch and command.
	// Zero falls back to the config timeout, then DefaultTimeout.
	Timeout time.Duration

	// Strict rejects unknown input fields.
	Strict bool
}

// Load loads and merges typography inputs.
//
// Each specifier can be:
//   - Local file path: "typography.yaml" or "/path/to/typography.json"
//   - npm package: "npm:@scope/pkg/typography.json" (requires node_modules)
//   - URL: "https://example.com/typography.json"
//   - command: "exec:deno run -A settings.ts", whose stdout is the input
//
// With no specifiers, the inputs listed in .config/typescale.yaml are used.
func Load(ctx context.Context, specs []string, opts Options) (*typography.Input, error) {
	l, err := newLoader(opts)
	if err != nil {
		return nil, err
	}

	var resolved []*specifier.ResolvedFile
	if len(specs) == 0 {
		resolved, err = l.cfg.ResolveInputs(l.resolver, l.fs, l.root)
		if err != nil {
			return nil, fmt.Errorf("error resolving config inputs: %w", err)
		}
	} else {
		for _, spec := range specs {
			rf, err := l.resolver.Resolve(spec)
			if err != nil {
				return nil, fmt.Errorf("error resolving %s: %w", spec, err)
			}
			resolved = append(resolved, rf)
		}
	}
	if len(resolved) == 0 {
		return nil, ErrNoInputs
	}

	inputs := make([]*typography.Input, 0, len(resolved))
	for _, rf := range resolved {
		in, err := l.load(ctx, rf)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded %s: %d families, %d text roles", rf.Specifier, len(in.Families), len(in.TextRoles))
		inputs = append(inputs, in)
	}

	merged := Merge(inputs...)
	if len(merged.Families) == 0 && len(merged.TextRoles) == 0 {
		specs := make([]string, len(resolved))
		for i, rf := range resolved {
			specs[i] = rf.Specifier
		}
		return nil, fmt.Errorf("%w: %s", ErrEmptyTypography, strings.Join(specs, ", "))
	}
	return merged, nil
}

type loader struct {
	fs       fs.FileSystem
	root     string
	cfg      *config.Config
	resolver specifier.Resolver
	parser   *parser.InputParser
	fetcher  Fetcher
	runner   Runner
	timeout  time.Duration
	strict   bool
}

func newLoader(opts Options) (*loader, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(filesystem, root)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cfg == nil {
		cfg = config.Default()
	}

	timeout := opts.Timeout
	if timeout == 0 {
		configured, err := cfg.TimeoutDuration()
		if err != nil {
			return nil, err
		}
		timeout = configured
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(DefaultMaxSize)
	}
	runner := opts.Runner
	if runner == nil {
		runner = NewCommandRunner()
	}

	return &loader{
		fs:       filesystem,
		root:     root,
		cfg:      cfg,
		resolver: specifier.NewDefaultResolver(filesystem, root),
		parser:   parser.NewInputParser(),
		fetcher:  fetcher,
		runner:   runner,
		timeout:  timeout,
		strict:   opts.Strict,
	}, nil
}

func (l *loader) load(ctx context.Context, rf *specifier.ResolvedFile) (*typography.Input, error) {
	popts := parser.Options{Strict: l.strict}

	switch rf.Kind {
	case specifier.KindURL:
		ctx, cancel := context.WithTimeout(ctx, l.timeout)
		defer cancel()
		content, err := l.fetcher.Fetch(ctx, rf.URL)
		if err != nil {
			return nil, err
		}
		in, err := l.parser.Parse(content, popts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rf.Specifier, err)
		}
		return in, nil

	case specifier.KindExec:
		ctx, cancel := context.WithTimeout(ctx, l.timeout)
		defer cancel()
		logger.Debug("running %q in %s", rf.Command, rf.Path)
		content, err := l.runner.Run(ctx, rf.Path, rf.Command)
		if err != nil {
			return nil, err
		}
		in, err := l.parser.Parse(content, popts)
		if err != nil {
			return nil, fmt.Errorf("output of %s: %w", rf.Specifier, err)
		}
		return in, nil

	default:
		return l.parser.ParseFile(l.fs, rf.Path, popts)
	}
}
