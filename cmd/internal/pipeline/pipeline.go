/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline loads configuration and inputs shared by the typescale commands.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"bennypowers.dev/typescale/config"
	"bennypowers.dev/typescale/convert"
	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/fs"
	"bennypowers.dev/typescale/internal/logger"
	"bennypowers.dev/typescale/load"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/typography"
)

// Viper keys bound to the root command's persistent flags.
const (
	KeyConfigDir = "config-dir"
	KeyInput     = "input"
	KeyTimeout   = "timeout"
	KeyVerbose   = "verbose"
	KeyStrict    = "strict"
)

// Options configures a pipeline run.
type Options struct {
	// Root holds .config/typescale.yaml and anchors relative inputs.
	Root string

	// FS defaults to the OS filesystem.
	FS fs.FileSystem

	// Inputs override the config inputs when non-empty.
	Inputs []string

	// Timeout bounds URL and exec: inputs. Zero defers to config.
	Timeout time.Duration

	// Strict rejects unknown input fields.
	Strict bool
}

// FromViper reads Options from the bound flags and TYPESCALE_* env vars.
// Positional args take precedence over --input.
func FromViper(args []string) Options {
	inputs := args
	if len(inputs) == 0 {
		inputs = viper.GetStringSlice(KeyInput)
	}
	return Options{
		Root:    viper.GetString(KeyConfigDir),
		Inputs:  inputs,
		Timeout: viper.GetDuration(KeyTimeout),
		Strict:  viper.GetBool(KeyStrict),
	}
}

// Result is everything a command needs after loading.
type Result struct {
	Root   string
	FS     fs.FileSystem
	Config *config.Config
	Input  *typography.Input
	Lookup *lookup.Lookup
}

// FormatterOptions returns the formatter options from the config.
func (r *Result) FormatterOptions() formatter.Options {
	return formatter.Options{
		QueryKind: r.Config.QueryKind(),
		Prefix:    r.Config.Prefix,
	}
}

// LoadConfig returns the config under opts.Root, or defaults.
func LoadConfig(opts Options) (*config.Config, fs.FileSystem, string, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, filesystem, root, nil
}

// Run loads config and inputs, then generates the export.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg, filesystem, root, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	in, err := load.Load(ctx, opts.Inputs, load.Options{
		Root:    root,
		FS:      filesystem,
		Config:  cfg,
		Timeout: opts.Timeout,
		Strict:  opts.Strict,
	})
	if err != nil {
		return nil, err
	}

	lk, err := convert.Build(in)
	if err != nil {
		return nil, err
	}
	logger.Debug("generated %d assignments over %d properties", lk.Len(), len(lk.Export().Properties))

	return &Result{
		Root:   root,
		FS:     filesystem,
		Config: cfg,
		Input:  in,
		Lookup: lk,
	}, nil
}
