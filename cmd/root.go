/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for typescale.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/typescale/cmd/explain"
	"bennypowers.dev/typescale/cmd/generate"
	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/cmd/mcp"
	"bennypowers.dev/typescale/cmd/query"
	"bennypowers.dev/typescale/cmd/schema"
	"bennypowers.dev/typescale/cmd/styles"
	"bennypowers.dev/typescale/cmd/validate"
	"bennypowers.dev/typescale/cmd/version"
	"bennypowers.dev/typescale/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "typescale",
	Short: "Generate typography tokens and Figma text styles from a type scale",
	Long: `typescale turns font metrics, text roles and a modular size scale into a
token-matched typography export, Figma text styles and DTCG typography tokens.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool(pipeline.KeyVerbose))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(pipeline.KeyConfigDir, ".", "Project directory containing .config/typescale.yaml")
	flags.StringArrayP(pipeline.KeyInput, "i", nil, "Input file, npm:, https:// or exec: specifier (repeatable)")
	flags.BoolP(pipeline.KeyVerbose, "v", false, "Enable debug logging")
	flags.Duration(pipeline.KeyTimeout, 0, "Timeout for URL and exec: inputs (default from config, then 30s)")
	flags.Bool(pipeline.KeyStrict, false, "Reject unknown fields in inputs")

	viper.SetEnvPrefix("TYPESCALE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(query.Cmd)
	rootCmd.AddCommand(explain.Cmd)
	rootCmd.AddCommand(styles.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(schema.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
