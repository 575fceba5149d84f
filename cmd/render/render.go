/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/typescale/convert/formatter/figma"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/typography"
)

// StyleRow holds computed display values for a single text style.
type StyleRow struct {
	Name          string // Figma style name, e.g. "UI / Small / Bold"
	Group         string // First name segment, e.g. "UI"
	Key           string // Identity key
	Family        string // Font family
	Style         string // Composed font style, e.g. "Bold Italic"
	FontSize      string // Font size with unit
	LineHeight    string // Line height with unit or "-"
	LetterSpacing string // Letter spacing with unit or "-"
	Description   string // Description with the key marker
}

// PropertyRow holds display values for one matched property.
type PropertyRow struct {
	Kind  string
	Value string
}

// FormatPx formats a pixel value without trailing zeros.
func FormatPx(px float64) string {
	return strconv.FormatFloat(px, 'f', -1, 64) + "px"
}

func formatOptionalPx(px *float64) string {
	if px == nil {
		return "-"
	}
	return FormatPx(*px)
}

// ComputeStyleRows transforms text styles into display rows.
func ComputeStyleRows(styles []figma.TextStyle) []StyleRow {
	rows := make([]StyleRow, 0, len(styles))
	for _, ts := range styles {
		group, _, _ := strings.Cut(ts.Name, "/")
		rows = append(rows, StyleRow{
			Name:          ts.Name,
			Group:         strings.TrimSpace(group),
			Key:           ts.Key,
			Family:        ts.Family(),
			Style:         ts.Style(),
			FontSize:      FormatPx(ts.FontSizePx),
			LineHeight:    formatOptionalPx(ts.LineHeightPx),
			LetterSpacing: formatOptionalPx(ts.LetterSpacingPx),
			Description:   ts.Description,
		})
	}
	return rows
}

// ComputePropertyRows transforms matched properties into display rows.
func ComputePropertyRows(props []typography.Property) []PropertyRow {
	rows := make([]PropertyRow, 0, len(props))
	for _, p := range props {
		row := PropertyRow{Kind: p.Kind.String()}
		switch p.Kind {
		case typography.FontFamily:
			row.Value = p.FamilyName
		case typography.FontStyle:
			row.Value = p.Style.String()
		default:
			row.Value = FormatPx(p.Px)
		}
		rows = append(rows, row)
	}
	return rows
}

// StylesTable renders style rows as an aligned table.
func StylesTable(w io.Writer, rows []StyleRow) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, familyW, styleW := 4, 6, 5 // minimums for headers
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		familyW = max(familyW, len(r.Family))
		styleW = max(styleW, len(r.Style))
	}
	if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n", nameW, "Name", familyW, "Family", styleW, "Style", "Size / Line / Tracking"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s / %s / %s\n",
			nameW, r.Name, familyW, r.Family, styleW, r.Style,
			r.FontSize, r.LineHeight, r.LetterSpacing); err != nil {
			return err
		}
	}
	return nil
}

// StylesMarkdown renders style rows as markdown tables grouped by the first name segment.
func StylesMarkdown(w io.Writer, rows []StyleRow) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows, preserving order of first occurrence
	groupOrder := make([]string, 0)
	byGroup := make(map[string][]StyleRow)
	for _, r := range rows {
		if _, exists := byGroup[r.Group]; !exists {
			groupOrder = append(groupOrder, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	var sb strings.Builder
	for i, group := range groupOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s {#%s}\n\n", toTitleCase(group), slugify(group))

		groupRows := byGroup[group]
		nameW, keyW, fontW := 4, 3, 4
		for _, r := range groupRows {
			nameW = max(nameW, len(r.Name))
			keyW = max(keyW, len(r.Key)+2)
			fontW = max(fontW, len(fontColumn(r)))
		}

		fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s | %s |\n", nameW, "Name", keyW, "Key", fontW, "Font", "Size")
		fmt.Fprintf(&sb, "|-%s-|-%s-|-%s-|------|\n",
			strings.Repeat("-", nameW), strings.Repeat("-", keyW), strings.Repeat("-", fontW))
		for _, r := range groupRows {
			fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s | %s |\n",
				nameW, r.Name, keyW, "`"+r.Key+"`", fontW, fontColumn(r), r.FontSize)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func fontColumn(r StyleRow) string {
	return r.Family + " " + r.Style
}

// StylesJSON renders styles as an indented JSON array.
func StylesJSON(w io.Writer, styles []figma.TextStyle) error {
	if styles == nil {
		styles = []figma.TextStyle{}
	}
	return writeJSON(w, styles)
}

// QueryTable renders a query result: properties in merge order, then the required tokens.
func QueryTable(w io.Writer, res lookup.Result) error {
	rows := ComputePropertyRows(res.Properties)
	kindW := 8
	for _, r := range rows {
		kindW = max(kindW, len(r.Kind))
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", kindW, r.Kind, r.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-*s  %s\n", kindW, "Required", res.Required.Key(" "))
	return err
}

// QueryJSON renders a query result as JSON.
func QueryJSON(w io.Writer, res lookup.Result) error {
	return writeJSON(w, res)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Body Text" -> "body-text"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' || r == '/' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(s)
}
