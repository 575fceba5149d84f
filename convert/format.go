/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"encoding/json"
	"fmt"
	"strings"

	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/convert/formatter/css"
	"bennypowers.dev/typescale/convert/formatter/dtcg"
	"bennypowers.dev/typescale/convert/formatter/exportjson"
	"bennypowers.dev/typescale/convert/formatter/figma"
	"bennypowers.dev/typescale/convert/formatter/js"
	"bennypowers.dev/typescale/lookup"
)

// Format represents an output format.
type Format string

const (
	// FormatExport outputs the typography export document (default).
	FormatExport Format = "export"

	// FormatFigma outputs the Figma plugin UpdateTypography command.
	FormatFigma Format = "figma"

	// FormatStyles outputs the resolved Figma text style records as a JSON array.
	FormatStyles Format = "styles"

	// FormatDTCG outputs DTCG typography composite tokens.
	FormatDTCG Format = "dtcg"

	// FormatCSS outputs CSS custom properties on :root.
	FormatCSS Format = "css"

	// FormatLit outputs a Lit css module with custom properties on :host.
	FormatLit Format = "lit"

	// FormatTypeScript outputs an ESM TypeScript module with const exports.
	FormatTypeScript Format = "typescript"

	// FormatJavaScript outputs an ESM JavaScript module with JSDoc types.
	FormatJavaScript Format = "javascript"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatExport),
		string(FormatFigma),
		string(FormatStyles),
		string(FormatDTCG),
		string(FormatCSS),
		string(FormatLit),
		string(FormatTypeScript),
		string(FormatJavaScript),
	}
}

// IsJSON reports whether format produces a JSON document.
func (f Format) IsJSON() bool {
	switch f {
	case FormatExport, FormatFigma, FormatStyles, FormatDTCG:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "export", "tokens", "all-tokens", "":
		return FormatExport, nil
	case "figma", "figma-plugin":
		return FormatFigma, nil
	case "styles", "text-styles":
		return FormatStyles, nil
	case "dtcg", "design-tokens":
		return FormatDTCG, nil
	case "css":
		return FormatCSS, nil
	case "lit", "lit-css":
		return FormatLit, nil
	case "typescript", "ts":
		return FormatTypeScript, nil
	case "javascript", "js":
		return FormatJavaScript, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// stylesFormatter outputs the bare text style records.
type stylesFormatter struct{}

func (stylesFormatter) Format(lk *lookup.Lookup, opts formatter.Options) ([]byte, error) {
	styles, err := figma.Resolve(lk, opts)
	if err != nil {
		return nil, err
	}
	if styles == nil {
		styles = []figma.TextStyle{}
	}
	return json.MarshalIndent(styles, "", "  ")
}

// NewFormatter returns the formatter for format.
func NewFormatter(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatExport:
		return exportjson.New(), nil
	case FormatFigma:
		return figma.New(), nil
	case FormatStyles:
		return stylesFormatter{}, nil
	case FormatDTCG:
		return dtcg.New(), nil
	case FormatCSS:
		return css.New(), nil
	case FormatLit:
		return css.NewWithOptions(css.Options{Selector: css.SelectorHost, Module: css.ModuleLit}), nil
	case FormatTypeScript:
		return js.New(), nil
	case FormatJavaScript:
		return js.NewWithOptions(js.Options{Types: js.TypesJSDoc}), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatLookup renders lk in the specified output format.
func FormatLookup(lk *lookup.Lookup, format Format, opts formatter.Options) ([]byte, error) {
	f, err := NewFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(lk, opts)
}
