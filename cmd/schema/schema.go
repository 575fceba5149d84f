/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides the schema command for typescale.
package schema

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	schemalib "bennypowers.dev/typescale/schema"
)

// Cmd is the schema cobra command.
var Cmd = &cobra.Command{
	Use:       "schema <" + strings.Join(schemalib.Names(), "|") + ">",
	Short:     "Print a JSON Schema document",
	Long:      `Print the JSON Schema for the typography input document or the generated export.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: schemalib.Names(),
	RunE:      run,
}

func run(cmd *cobra.Command, args []string) error {
	name, err := schemalib.ParseName(args[0])
	if err != nil {
		return err
	}
	data, err := schemalib.Generate(name)
	if err != nil {
		return fmt.Errorf("error generating %s schema: %w", name, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
