/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks typography inputs for consistency problems that
// generation would otherwise surface late or not at all.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/typescale/convert/formatter/figma"
	"bennypowers.dev/typescale/matrix"
	"bennypowers.dev/typescale/token"
	"bennypowers.dev/typescale/typography"
)

// Weight bounds accepted for Families[].Weights, as in CSS font-weight.
const (
	MinWeight = 1
	MaxWeight = 1000
)

// ValidationError represents an input consistency error.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the path to the problematic element, e.g. "TextRoles[2].FamilyBaseName".
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks in and returns every problem found.
func Validate(in *typography.Input) []ValidationError {
	return ValidateWithPath(in, "")
}

// ValidateWithPath validates in and includes filePath in errors.
func ValidateWithPath(in *typography.Input, filePath string) []ValidationError {
	v := &validation{filePath: filePath}
	v.families(in.Families)
	v.textRoles(in.TextRoles, in.Families)
	v.fontSizeScale(in.FontSizeScale)
	v.figmaMatrix(in.Extensions)
	return v.errs
}

type validation struct {
	filePath string
	errs     []ValidationError
}

func (v *validation) add(path, suggestion, format string, args ...any) {
	v.errs = append(v.errs, ValidationError{
		FilePath:   v.filePath,
		Path:       path,
		Message:    fmt.Sprintf(format, args...),
		Suggestion: suggestion,
	})
}

func (v *validation) families(families []typography.Family) {
	seen := make(map[string]int, len(families))
	for i, f := range families {
		path := fmt.Sprintf("Families[%d]", i)
		if f.BaseName == "" {
			v.add(path+".BaseName", "", "family has no BaseName")
		} else if first, dup := seen[f.BaseName]; dup {
			v.add(path+".BaseName", fmt.Sprintf("first declared at Families[%d]", first),
				"duplicate family %q", f.BaseName)
		} else {
			seen[f.BaseName] = i
		}

		if f.Metrics.UnitsPerEm <= 0 {
			v.add(path+".Metrics.unitsPerEm", "", "unitsPerEm must be positive, got %v", f.Metrics.UnitsPerEm)
		}
		if f.Metrics.CapHeight <= 0 {
			v.add(path+".Metrics.capHeight", "", "capHeight must be positive, got %v", f.Metrics.CapHeight)
		}

		weights := make(map[int]bool, len(f.Weights))
		for j, w := range f.Weights {
			wpath := fmt.Sprintf("%s.Weights[%d].Weight", path, j)
			if w.Weight < MinWeight || w.Weight > MaxWeight {
				v.add(wpath, fmt.Sprintf("use a value between %d and %d", MinWeight, MaxWeight),
					"weight %d is out of range", w.Weight)
			}
			if weights[w.Weight] {
				v.add(wpath, "", "duplicate weight %d in family %q", w.Weight, f.BaseName)
			}
			weights[w.Weight] = true
		}
	}
}

func (v *validation) textRoles(roles []typography.TextRole, families []typography.Family) {
	known := make([]string, 0, len(families))
	for _, f := range families {
		if f.BaseName != "" && !slices.Contains(known, f.BaseName) {
			known = append(known, f.BaseName)
		}
	}

	seen := make(map[string]int, len(roles))
	for i, r := range roles {
		path := fmt.Sprintf("TextRoles[%d]", i)
		v.tokenValue(path+".Token", typography.KeyRole, r.Token)
		if first, dup := seen[r.Token]; dup {
			v.add(path+".Token", fmt.Sprintf("first declared at TextRoles[%d]", first),
				"duplicate text role %q", r.Token)
		} else {
			seen[r.Token] = i
		}

		if !slices.Contains(known, r.FamilyBaseName) {
			suggestion := "no families are declared"
			if len(known) > 0 {
				suggestion = "known families: " + strings.Join(known, ", ")
			}
			v.add(path+".FamilyBaseName", suggestion, "unknown family %q", r.FamilyBaseName)
		}
		if r.LineHeightRule.FontSizePxMultiplier == nil {
			v.add(path+".LineHeightRule", "set FontSizePxMultipler", "line height rule has no variant")
		}
		if r.TrackingRule.DynMetrics == nil {
			v.add(path+".TrackingRule", "set DynMetrics", "tracking rule has no variant")
		}
	}
}

func (v *validation) fontSizeScale(scale typography.FontSizeScale) {
	if scale.Equation.Multiplier == nil && len(scale.FontSizes) > 0 {
		v.add("FontSizeScale.Equation", "set Multiplier", "font size equation has no variant")
	}
	aligns := []struct {
		name string
		opt  *float64
	}{
		{"AlignCapHeightPxOption", scale.AlignCapHeightPxOption},
		{"AlignLineHeightPxOption", scale.AlignLineHeightPxOption},
	}
	for _, a := range aligns {
		if a.opt != nil && *a.opt <= 0 {
			v.add("FontSizeScale."+a.name, "omit it to disable alignment", "alignment must be positive, got %v", *a.opt)
		}
	}

	seen := make(map[string]int, len(scale.FontSizes))
	for i, fs := range scale.FontSizes {
		path := fmt.Sprintf("FontSizeScale.FontSizes[%d].Token", i)
		v.tokenValue(path, typography.KeySize, fs.Token)
		if first, dup := seen[fs.Token]; dup {
			v.add(path, fmt.Sprintf("first declared at FontSizes[%d]", first), "duplicate font size %q", fs.Token)
		} else {
			seen[fs.Token] = i
		}
	}
}

// tokenValue checks that key:value forms a single valid token.
func (v *validation) tokenValue(path, key, value string) {
	if _, err := token.Parse(key + ":" + value); err != nil || strings.ContainsAny(value, " \t\n,") {
		v.add(path, "use a value without whitespace, commas or colons", "%q is not a valid %s token value", value, key)
	}
}

func (v *validation) figmaMatrix(extensions map[string]json.RawMessage) {
	var (
		raw  json.RawMessage
		name string
	)
	for k, ext := range extensions {
		if strings.EqualFold(k, figma.Consumer) {
			raw, name = ext, k
			break
		}
	}
	if raw == nil {
		return
	}

	var cfg figma.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		v.add("Extensions."+name, "", "invalid Figma extension: %v", err)
		return
	}

	keys := make(map[string]string)
	for i, style := range cfg.FigmaTextStyles {
		path := fmt.Sprintf("Extensions.%s.FigmaTextStyles[%d]", name, i)
		entries, err := matrix.Expand(style)
		if err != nil {
			suggestion := ""
			var perr *token.ParseError
			if errors.As(err, &perr) {
				suggestion = "tokens are kind or key:value, separated by spaces or commas"
			}
			v.add(path, suggestion, "%v", err)
			continue
		}
		for _, e := range entries {
			id := e.Key.ID()
			if other, dup := keys[id]; dup {
				v.add(path, "give one of the options an explicit Key",
					"text styles %q and %q share the identity key %q", other, e.Name, e.Key.String())
				continue
			}
			keys[id] = e.Name
		}
	}
}
