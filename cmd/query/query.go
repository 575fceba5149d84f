/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package query provides the query command for typescale.
package query

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/cmd/render"
	"bennypowers.dev/typescale/token"
)

// Cmd is the query cobra command.
var Cmd = &cobra.Command{
	Use:   "query <tokens...>",
	Short: "Query the merged properties for a token set",
	Long: `Query the typography export with a token set and print the merged properties
and the union of required tokens.

Queries without a kind token get the configured query kind (default "text").

Examples:
  typescale query role:ui size:sm weight:700
  typescale query -i typography.yaml --format json "text role:code size:base"`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

// ParseQuery parses the command's token arguments into a set.
func ParseQuery(args []string) (token.Set, error) {
	q, err := token.ParseSet(strings.Join(args, " "))
	if err != nil {
		return token.Set{}, fmt.Errorf("invalid query: %w", err)
	}
	return q, nil
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	q, err := ParseQuery(args)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(cmd.Context(), pipeline.FromViper(nil))
	if err != nil {
		return err
	}

	result := res.Lookup.Query(res.FormatterOptions().SeedQuery(q))

	switch format {
	case "json":
		return render.QueryJSON(cmd.OutOrStdout(), result)
	case "table":
		return render.QueryTable(cmd.OutOrStdout(), result)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json)", format)
	}
}
