/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package styles provides the styles command for typescale.
package styles

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/cmd/render"
	"bennypowers.dev/typescale/convert/formatter/figma"
)

// Cmd is the styles cobra command.
var Cmd = &cobra.Command{
	Use:   "styles [inputs...]",
	Short: "List the Figma text styles produced by the style matrix",
	Long:  `Expand the Figma text style matrix and list every resolved text style.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, markdown, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	res, err := pipeline.Run(cmd.Context(), pipeline.FromViper(args))
	if err != nil {
		return err
	}

	styles, err := figma.Resolve(res.Lookup, res.FormatterOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.StylesJSON(out, styles)
	case "markdown":
		return render.StylesMarkdown(out, render.ComputeStyleRows(styles))
	case "table":
		return render.StylesTable(out, render.ComputeStyleRows(styles))
	default:
		return fmt.Errorf("unknown format: %s (valid: table, markdown, json)", format)
	}
}
