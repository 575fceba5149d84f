/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js renders sized text roles as JavaScript/TypeScript constants.
// It supports ESM/CommonJS modules and TypeScript/JSDoc types.
package js

import (
	"bytes"
	"fmt"
	"strconv"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/convert/formatter/dtcg"
	"bennypowers.dev/typescale/lookup"
)

// Module specifies the JavaScript module system.
type Module string

const (
	// ModuleESM uses ES Modules (default).
	ModuleESM Module = "esm"
	// ModuleCJS uses CommonJS.
	ModuleCJS Module = "cjs"
)

// Types specifies the type annotation system.
type Types string

const (
	// TypesTS uses TypeScript annotations (default).
	TypesTS Types = "ts"
	// TypesJSDoc uses JSDoc annotations.
	TypesJSDoc Types = "jsdoc"
)

// Options configures the JS formatter.
type Options struct {
	Module Module
	Types  Types
}

// Formatter outputs JavaScript/TypeScript with configurable options.
type Formatter struct {
	opts Options
}

// New creates a new JS formatter with default options (ESM, TypeScript).
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new JS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Module == "" {
		opts.Module = ModuleESM
	}
	if opts.Types == "" {
		opts.Types = TypesTS
	}
	return &Formatter{opts: opts}
}

// Extension returns the appropriate file extension for the configured options.
func (f *Formatter) Extension() string {
	switch {
	case f.opts.Module == ModuleCJS && f.opts.Types == TypesTS:
		return ".cts"
	case f.opts.Module == ModuleCJS && f.opts.Types == TypesJSDoc:
		return ".cjs"
	case f.opts.Types == TypesJSDoc:
		return ".js"
	default:
		return ".ts"
	}
}

const jsdocTypedef = `/**
 * @typedef {object} TextStyle
 * @property {string} fontFamily
 * @property {string} fontSize
 * @property {number} [lineHeight]
 * @property {string} [letterSpacing]
 */

`

// Format emits one frozen constant per sized text role, named <prefix><Role><Size>.
func (f *Formatter) Format(lk *lookup.Lookup, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Generated by typescale. Do not edit.\n\n")
	if f.opts.Types == TypesJSDoc {
		buf.WriteString(jsdocTypedef)
	}

	for i, e := range dtcg.Entries(lk, opts) {
		if i > 0 {
			buf.WriteString("\n")
		}
		name := formatter.ToCamelCase(formatter.ApplyPrefix(e.Role+" "+e.Size, opts.Prefix, " "))
		fmt.Fprintf(&buf, "/** %s */\n", e.Required)
		if f.opts.Types == TypesJSDoc {
			buf.WriteString("/** @type {Readonly<TextStyle>} */\n")
		}
		f.writeDeclaration(&buf, name)
		writeValue(&buf, e.Value)
		if f.opts.Types == TypesTS {
			buf.WriteString(" as const;\n")
		} else {
			buf.WriteString(");\n")
		}
	}
	return buf.Bytes(), nil
}

func (f *Formatter) writeDeclaration(buf *bytes.Buffer, name string) {
	switch {
	case f.opts.Module == ModuleCJS && f.opts.Types == TypesTS:
		fmt.Fprintf(buf, "export const %s = ", name)
	case f.opts.Module == ModuleCJS:
		fmt.Fprintf(buf, "exports.%s = Object.freeze(", name)
	case f.opts.Types == TypesTS:
		fmt.Fprintf(buf, "export const %s = ", name)
	default:
		fmt.Fprintf(buf, "export const %s = Object.freeze(", name)
	}
}

func writeValue(buf *bytes.Buffer, v dtcg.Value) {
	buf.WriteString("{\n")
	fmt.Fprintf(buf, "  fontFamily: %s,\n", strconv.Quote(v.FontFamily))
	fmt.Fprintf(buf, "  fontSize: %s,\n", strconv.Quote(dimension(v.FontSize)))
	if v.LineHeight != nil {
		fmt.Fprintf(buf, "  lineHeight: %s,\n", strconv.FormatFloat(*v.LineHeight, 'f', -1, 64))
	}
	if v.LetterSpacing != nil {
		fmt.Fprintf(buf, "  letterSpacing: %s,\n", strconv.Quote(dimension(*v.LetterSpacing)))
	}
	buf.WriteString("}")
}

func dimension(d dtcg.Dimension) string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + d.Unit
}
