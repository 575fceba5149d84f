/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for typescale.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/load"
	"bennypowers.dev/typescale/typography"
	"bennypowers.dev/typescale/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [inputs...]",
	Short: "Validate typography inputs",
	Long: `Validate typography inputs for consistency: family references, duplicate
tokens, weight and metric ranges, and the Figma text style matrix.

Each input is parsed on its own, then the merged input is checked.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	opts := pipeline.FromViper(args)
	cfg, filesystem, root, err := pipeline.LoadConfig(opts)
	if err != nil {
		return err
	}

	files := opts.Inputs
	if len(files) == 0 {
		expanded, err := cfg.ExpandInputs(filesystem, root)
		if err != nil {
			return fmt.Errorf("error expanding config inputs: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return load.ErrNoInputs
	}

	loadOpts := load.Options{
		Root:    root,
		FS:      filesystem,
		Config:  cfg,
		Timeout: opts.Timeout,
		Strict:  opts.Strict,
	}

	hasErrors := false
	var inputs []*typography.Input
	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}
		in, err := load.Load(cmd.Context(), []string{file}, loadOpts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			hasErrors = true
			continue
		}
		inputs = append(inputs, in)
		if !quiet {
			fmt.Printf("  %d families, %d text roles, %d sizes\n",
				len(in.Families), len(in.TextRoles), len(in.FontSizeScale.FontSizes))
		}
	}

	if len(inputs) > 0 {
		label := files[0]
		if len(files) > 1 {
			label = "merged input"
		}
		for _, verr := range validator.ValidateWithPath(load.Merge(inputs...), label) {
			fmt.Fprintln(os.Stderr, verr.Error())
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All inputs valid.")
	}
	return nil
}
