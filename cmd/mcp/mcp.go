/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, a stdio Model Context Protocol server
// that answers typography queries against the loaded export.
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/convert/formatter/figma"
	"bennypowers.dev/typescale/internal/logger"
	"bennypowers.dev/typescale/internal/version"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/token"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp [inputs...]",
	Short: "Serve typography queries over MCP (stdio)",
	Long: `Run a Model Context Protocol server on stdin/stdout.

Tools:
  query        merged properties and required tokens for a token set
  explain      why each candidate rule matches or misses a token set
  text_styles  the resolved Figma text styles`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol
	logger.SetOutput(io.Discard)

	res, err := pipeline.Run(cmd.Context(), pipeline.FromViper(args))
	if err != nil {
		return err
	}
	return NewServer(res.Lookup, res.FormatterOptions()).Run(cmd.Context(), &mcp.StdioTransport{})
}

// QueryArgs are the arguments of the query tool.
type QueryArgs struct {
	Tokens string `json:"tokens" jsonschema:"space separated tokens, e.g. 'role:ui size:sm weight:700'"`
}

// ExplainArgs are the arguments of the explain tool.
type ExplainArgs struct {
	Tokens string `json:"tokens" jsonschema:"space separated tokens, e.g. 'role:ui size:sm'"`
	Rule   *int   `json:"rule,omitempty" jsonschema:"explain only the assignment at this index"`
}

// TextStylesArgs are the arguments of the text_styles tool.
type TextStylesArgs struct {
	Name string `json:"name,omitempty" jsonschema:"only styles whose name contains this text"`
}

type tools struct {
	lk   *lookup.Lookup
	opts formatter.Options
}

// NewServer builds the MCP server over lk.
func NewServer(lk *lookup.Lookup, opts formatter.Options) *mcp.Server {
	t := &tools{lk: lk, opts: opts}
	server := mcp.NewServer(&mcp.Implementation{Name: "typescale", Version: version.Get()}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "Merged typography properties for a token set, in override order, with the union of required tokens.",
	}, t.query)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "explain",
		Description: "Explain which rules match a token set and list the mismatches of those that do not.",
	}, t.explain)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "text_styles",
		Description: "List the resolved Figma text styles.",
	}, t.textStyles)
	return server
}

func (t *tools) parse(tokens string) (token.Set, error) {
	q, err := token.ParseSet(tokens)
	if err != nil {
		return token.Set{}, err
	}
	return t.opts.SeedQuery(q), nil
}

func (t *tools) query(_ context.Context, _ *mcp.CallToolRequest, args QueryArgs) (*mcp.CallToolResult, any, error) {
	q, err := t.parse(args.Tokens)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(t.lk.Query(q))
}

func (t *tools) explain(_ context.Context, _ *mcp.CallToolRequest, args ExplainArgs) (*mcp.CallToolResult, any, error) {
	q, err := t.parse(args.Tokens)
	if err != nil {
		return nil, nil, err
	}
	if args.Rule != nil {
		ex, err := t.lk.ExplainRule(q, *args.Rule)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult([]lookup.Explanation{ex})
	}
	return jsonResult(t.lk.ExplainCandidates(q))
}

func (t *tools) textStyles(_ context.Context, _ *mcp.CallToolRequest, args TextStylesArgs) (*mcp.CallToolResult, any, error) {
	styles, err := figma.Resolve(t.lk, t.opts)
	if err != nil {
		return nil, nil, err
	}
	filtered := make([]figma.TextStyle, 0, len(styles))
	for _, ts := range styles {
		if args.Name == "" || strings.Contains(strings.ToLower(ts.Name), strings.ToLower(args.Name)) {
			filtered = append(filtered, ts)
		}
	}
	return jsonResult(filtered)
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
