/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for typescale.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/config"
	"bennypowers.dev/typescale/convert"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [inputs...]",
	Short: "Generate typography outputs from inputs",
	Long: `Generate the typography export and derived outputs from typography inputs.

Output Formats:
  export      Token-matched typography export (default)
  figma       Figma plugin UpdateTypography command
  styles      Resolved Figma text styles as a JSON array
  dtcg        DTCG typography composite tokens
  css         CSS custom properties on :root
  lit         Lit css module with custom properties on :host
  typescript  ESM TypeScript module with one const per sized text role
  javascript  ESM JavaScript module with JSDoc types

Examples:
  # Print the export for a local input
  typescale generate typography.yaml

  # Write Figma styles for an input produced by a script
  typescale generate -f figma -o figma.json "exec:deno run -A settings.ts"

  # Multi-output mode: generate several formats at once
  typescale generate --outputs export:dist/typography.json --outputs dtcg:dist/tokens.json

  # Use inputs and outputs from config (.config/typescale.yaml)
  typescale generate`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", string(convert.FormatExport), "Output format: "+strings.Join(convert.ValidFormats(), ", "))
	Cmd.Flags().StringArray("outputs", nil, "Multiple outputs as format:path pairs (repeatable)")
	Cmd.Flags().String("prefix", "", "Top-level group for DTCG output (overrides config)")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	outputsFlag, _ := cmd.Flags().GetStringArray("outputs")
	prefix, _ := cmd.Flags().GetString("prefix")

	format, err := convert.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	var cliOutputs []config.OutputSpec
	for _, spec := range outputsFlag {
		out, err := convert.ParseOutputSpec(spec)
		if err != nil {
			return err
		}
		cliOutputs = append(cliOutputs, out)
	}
	if len(cliOutputs) > 0 && output != "" {
		return fmt.Errorf("--outputs and --output are mutually exclusive")
	}

	res, err := pipeline.Run(cmd.Context(), pipeline.FromViper(args))
	if err != nil {
		return err
	}

	opts := res.FormatterOptions()
	if prefix != "" {
		opts.Prefix = prefix
	}

	if len(cliOutputs) > 0 {
		return convert.WriteOutputs(res.FS, "", res.Lookup, cliOutputs, opts, os.Stderr)
	}

	// Config outputs apply only when no single output is requested
	if output == "" && !cmd.Flags().Changed("format") && len(res.Config.Outputs) > 0 {
		return convert.WriteOutputs(res.FS, res.Root, res.Lookup, res.Config.Outputs, opts, os.Stderr)
	}

	data, err := convert.Render(res.Lookup, format, opts)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := res.FS.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", output, err)
	}
	if err := res.FS.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	return nil
}
