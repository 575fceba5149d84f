/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma resolves text-style matrices into Figma text style records and
// the plugin command that applies them.
package figma

import (
	"encoding/json"
	"fmt"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/internal/logger"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/matrix"
	"bennypowers.dev/typescale/typography"
)

// Config is the "Figma" extension of the typography input.
type Config struct {
	// FigmaTextStyles lists the text-style matrices to expand.
	FigmaTextStyles []matrix.TextStyle `json:"FigmaTextStyles"`
}

// ReadConfig decodes the figma extension of exp. A missing extension yields an
// empty Config.
func ReadConfig(exp *typography.Export) (Config, error) {
	var cfg Config
	raw, ok := exp.Extension(Consumer)
	if !ok {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read %s extension: %w", Consumer, err)
	}
	return cfg, nil
}

// BuildTextStyles expands styles and resolves every entry against lk.
//
// Queries are seeded with opts' Kind when the entry carries none. Entries that
// fail to resolve are reported together after the whole batch; the records of
// the entries that succeeded are still returned.
func BuildTextStyles(lk *lookup.Lookup, styles []matrix.TextStyle, opts formatter.Options) ([]TextStyle, error) {
	entries, err := matrix.ExpandAll(styles)
	if err != nil {
		return nil, err
	}
	logger.Debug("expanded %d text styles into %d entries", len(styles), len(entries))

	return matrix.Resolve(entries, func(e matrix.Entry) (TextStyle, error) {
		res := lk.Query(opts.SeedQuery(e.Tokens))
		ts, err := Reduce(e.Name, e.Key.String(), res.Properties)
		if err != nil {
			return TextStyle{}, err
		}
		ts.Description = InsertDescriptionKey(e.Description, ts.Key)
		return ts, nil
	})
}

// Command is the message understood by the Figma plugin.
type Command struct {
	FigmaPlugin Operation `json:"figma_plugin"`
}

// Operation is the externally tagged plugin operation.
type Operation struct {
	UpdateTypography *UpdateTypography `json:"UpdateTypography,omitempty"`
}

// UpdateTypography replaces the document's text styles.
type UpdateTypography struct {
	TextStyles []TextStyle `json:"text_styles"`
}

// NewCommand wraps text styles in an UpdateTypography command.
func NewCommand(styles []TextStyle) Command {
	if styles == nil {
		styles = []TextStyle{}
	}
	return Command{FigmaPlugin: Operation{UpdateTypography: &UpdateTypography{TextStyles: styles}}}
}

// Formatter outputs the Figma plugin command.
type Formatter struct{}

// New creates a new Figma formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format resolves the export's figma extension and renders the plugin command.
func (f *Formatter) Format(lk *lookup.Lookup, opts formatter.Options) ([]byte, error) {
	styles, err := Resolve(lk, opts)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(NewCommand(styles), "", "  ")
}

// Resolve reads the figma extension from lk's export and builds its text styles.
func Resolve(lk *lookup.Lookup, opts formatter.Options) ([]TextStyle, error) {
	cfg, err := ReadConfig(lk.Export())
	if err != nil {
		return nil, err
	}
	if len(cfg.FigmaTextStyles) == 0 {
		logger.Warn("no FigmaTextStyles in the %s extension", Consumer)
	}
	return BuildTextStyles(lk, cfg.FigmaTextStyles, opts)
}
