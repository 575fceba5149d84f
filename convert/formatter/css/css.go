/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders sized text roles as CSS custom properties.
package css

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/convert/formatter/dtcg"
	"bennypowers.dev/typescale/lookup"
)

// Selector is the rule selector wrapping the custom properties.
type Selector string

const (
	// SelectorRoot targets the document root (default).
	SelectorRoot Selector = ":root"
	// SelectorHost targets a shadow root host.
	SelectorHost Selector = ":host"
)

// Module is the output wrapper.
type Module string

const (
	// ModuleNone emits a plain stylesheet (default).
	ModuleNone Module = ""
	// ModuleLit emits a JavaScript module exporting a Lit css tagged template.
	ModuleLit Module = "lit"
)

// Options configures the CSS formatter.
type Options struct {
	Selector Selector
	Module   Module
}

// Formatter outputs CSS custom properties.
type Formatter struct {
	opts Options
}

// New creates a new CSS formatter with default options.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new CSS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = SelectorRoot
	}
	return &Formatter{opts: opts}
}

// Format emits, per sized text role, the longhand properties and a font shorthand:
//
//	--<prefix>-<role>-<size>-font-family: "Inter";
//	--<prefix>-<role>-<size>: 12px/1.5 "Inter";
func (f *Formatter) Format(lk *lookup.Lookup, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer

	if f.opts.Module == ModuleLit {
		buf.WriteString("import { css } from 'lit';\n\nexport default css`\n")
	}

	fmt.Fprintf(&buf, "%s {\n", f.opts.Selector)
	for _, e := range dtcg.Entries(lk, opts) {
		name := "--" + formatter.ApplyPrefix(
			formatter.ToKebabCase(e.Role)+"-"+formatter.ToKebabCase(e.Size),
			formatter.ToKebabCase(opts.Prefix), "-")
		family := quoteFamily(e.Value.FontFamily)
		size := dimension(e.Value.FontSize)

		fmt.Fprintf(&buf, "  %s-font-family: %s;\n", name, family)
		fmt.Fprintf(&buf, "  %s-font-size: %s;\n", name, size)
		shorthand := size
		if e.Value.LineHeight != nil {
			lh := number(*e.Value.LineHeight)
			fmt.Fprintf(&buf, "  %s-line-height: %s;\n", name, lh)
			shorthand += "/" + lh
		}
		if e.Value.LetterSpacing != nil {
			fmt.Fprintf(&buf, "  %s-letter-spacing: %s;\n", name, dimension(*e.Value.LetterSpacing))
		}
		fmt.Fprintf(&buf, "  %s: %s %s;\n", name, shorthand, family)
	}
	buf.WriteString("}\n")

	if f.opts.Module == ModuleLit {
		buf.WriteString("`;\n")
	}
	return buf.Bytes(), nil
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func dimension(d dtcg.Dimension) string {
	if d.Value == 0 {
		return "0"
	}
	return number(d.Value) + d.Unit
}

// quoteFamily quotes a family name for use in font declarations.
func quoteFamily(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
}
