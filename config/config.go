/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads the project configuration for typescale.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultQueryKind seeds Figma text style queries whose tokens name no kind.
const DefaultQueryKind = "text"

// Config represents the typescale project configuration.
type Config struct {
	// Inputs are the typography input documents, merged in order.
	Inputs []InputSpec `yaml:"inputs" json:"inputs"`

	// Outputs are generated together by `typescale generate`.
	Outputs []OutputSpec `yaml:"outputs" json:"outputs"`

	// Timeout bounds exec: commands and URL fetches, e.g. "30s".
	Timeout string `yaml:"timeout" json:"timeout"`

	// Prefix is the top-level group for DTCG output.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Figma configures the Figma text style consumer.
	Figma FigmaConfig `yaml:"figma" json:"figma"`
}

// FigmaConfig configures Figma text style resolution.
type FigmaConfig struct {
	// QueryKind is the kind token added to matrix queries (default "text").
	QueryKind string `yaml:"queryKind" json:"queryKind"`
}

// InputSpec represents an input specification.
// It can be written as a plain string or as an object.
type InputSpec struct {
	// Path is a file path, glob, npm: specifier, URL or exec: command.
	Path string `yaml:"path" json:"path"`
}

// UnmarshalYAML handles both string and object forms for InputSpec.
func (s *InputSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Path = node.Value
		return nil
	}

	type rawInputSpec InputSpec
	return node.Decode((*rawInputSpec)(s))
}

// UnmarshalJSON handles both string and object forms for InputSpec.
func (s *InputSpec) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Path = str
		return nil
	}

	type rawInputSpec InputSpec
	return json.Unmarshal(data, (*rawInputSpec)(s))
}

// OutputSpec is one generated file.
type OutputSpec struct {
	// Format is the output format name (export, figma, styles, dtcg).
	Format string `yaml:"format" json:"format"`

	// Path is the file to write.
	Path string `yaml:"path" json:"path"`

	// Prefix overrides the global prefix for this output.
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Figma: FigmaConfig{QueryKind: DefaultQueryKind},
	}
}

// QueryKind returns the configured Figma query kind or the default.
func (c *Config) QueryKind() string {
	if c.Figma.QueryKind == "" {
		return DefaultQueryKind
	}
	return c.Figma.QueryKind
}

// TimeoutDuration parses Timeout. Zero means unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", c.Timeout)
	}
	return d, nil
}

// InputPaths returns the raw paths of all InputSpecs.
func (c *Config) InputPaths() []string {
	paths := make([]string, 0, len(c.Inputs))
	for _, spec := range c.Inputs {
		paths = append(paths, spec.Path)
	}
	return paths
}
