/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package explain provides the explain command for typescale.
package explain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/cmd/query"
	"bennypowers.dev/typescale/lookup"
)

// Cmd is the explain cobra command.
var Cmd = &cobra.Command{
	Use:   "explain <tokens...>",
	Short: "Explain why rules match or miss a token set",
	Long: `Explain how a query fares against the export's rules.

With --rule, only that assignment is explained. Otherwise every rule that shares
a token with the query, or has no requirements, is listed.

Examples:
  typescale explain role:ui size:sm
  typescale explain --rule 12 text role:code size:lg`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Int("rule", -1, "Explain only the assignment at this index")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	rule, _ := cmd.Flags().GetInt("rule")
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}

	q, err := query.ParseQuery(args)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(cmd.Context(), pipeline.FromViper(nil))
	if err != nil {
		return err
	}
	q = res.FormatterOptions().SeedQuery(q)

	var explanations []lookup.Explanation
	if cmd.Flags().Changed("rule") {
		ex, err := res.Lookup.ExplainRule(q, rule)
		if err != nil {
			return err
		}
		explanations = []lookup.Explanation{ex}
	} else {
		explanations = res.Lookup.ExplainCandidates(q)
	}

	if format == "json" {
		data, err := json.MarshalIndent(explanations, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	return Text(cmd.OutOrStdout(), explanations)
}

// Text renders explanations one rule per line, mismatches indented below.
func Text(w io.Writer, explanations []lookup.Explanation) error {
	for _, ex := range explanations {
		status := "matches"
		if !ex.Matched {
			status = "no match"
		}
		if _, err := fmt.Fprintf(w, "#%d [%s] %s\n", ex.Rule, ex.Requirements, status); err != nil {
			return err
		}
		for _, m := range ex.Mismatches {
			if _, err := fmt.Fprintf(w, "    %s\n", m); err != nil {
				return err
			}
		}
	}
	return nil
}
