/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	tsfs "bennypowers.dev/typescale/fs"
	"bennypowers.dev/typescale/specifier"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "typescale"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/typescale.{yaml,yml,json} under rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tsfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}
		if _, err := cfg.TimeoutDuration(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found or unreadable.
func LoadOrDefault(filesystem tsfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandInputs expands glob patterns in Inputs.
// npm:, URL and exec: specifiers pass through unchanged.
func (c *Config) ExpandInputs(filesystem tsfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	for _, spec := range c.Inputs {
		expanded, err := expandInputPath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// ResolveInputs expands globs and resolves every input specifier.
func (c *Config) ResolveInputs(resolver specifier.Resolver, filesystem tsfs.FileSystem, rootDir string) ([]*specifier.ResolvedFile, error) {
	expanded, err := c.ExpandInputs(filesystem, rootDir)
	if err != nil {
		return nil, err
	}

	result := make([]*specifier.ResolvedFile, 0, len(expanded))
	for _, path := range expanded {
		resolved, err := resolver.Resolve(path)
		if err != nil {
			return nil, err
		}
		result = append(result, resolved)
	}
	return result, nil
}

func expandInputPath(filesystem tsfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if specifier.KindOf(pattern) != specifier.KindLocal {
		return []string{pattern}, nil
	}

	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and returns sorted matches.
func expandGlob(filesystem tsfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(matches)
	return matches, nil
}
