/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert turns typography inputs into generated output documents.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bennypowers.dev/typescale/config"
	"bennypowers.dev/typescale/convert/formatter"
	"bennypowers.dev/typescale/fs"
	"bennypowers.dev/typescale/lookup"
	"bennypowers.dev/typescale/typography"
)

// Build generates the export for in and wraps it in a Lookup.
func Build(in *typography.Input) (*lookup.Lookup, error) {
	exp, err := typography.Generate(in)
	if err != nil {
		return nil, err
	}
	return lookup.New(exp), nil
}

// ParseOutputSpec parses a "format:path" pair.
func ParseOutputSpec(spec string) (config.OutputSpec, error) {
	formatPart, pathPart, found := strings.Cut(spec, ":")
	if !found || pathPart == "" {
		return config.OutputSpec{}, fmt.Errorf("invalid output spec %q: expected format:path", spec)
	}
	if _, err := ParseFormat(formatPart); err != nil {
		return config.OutputSpec{}, fmt.Errorf("invalid output spec %q: %w", spec, err)
	}
	return config.OutputSpec{Format: formatPart, Path: pathPart}, nil
}

// Render formats lk for a single output, terminated by a newline.
func Render(lk *lookup.Lookup, format Format, opts formatter.Options) ([]byte, error) {
	data, err := FormatLookup(lk, format, opts)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// WriteOutputs renders and writes every output.
// Failures are reported to log and do not stop later outputs.
// Output paths are relative to root unless absolute.
func WriteOutputs(
	filesystem fs.FileSystem,
	root string,
	lk *lookup.Lookup,
	outputs []config.OutputSpec,
	opts formatter.Options,
	log io.Writer,
) error {
	var failures int
	for _, out := range outputs {
		format, err := ParseFormat(out.Format)
		if err != nil {
			fmt.Fprintf(log, "Error parsing format for %s: %v\n", out.Path, err)
			failures++
			continue
		}

		outOpts := opts
		if out.Prefix != "" {
			outOpts.Prefix = out.Prefix
		}

		data, err := Render(lk, format, outOpts)
		if err != nil {
			fmt.Fprintf(log, "Error formatting %s: %v\n", out.Path, err)
			failures++
			continue
		}

		path := out.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if err := filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			fmt.Fprintf(log, "Error creating directory for %s: %v\n", out.Path, err)
			failures++
			continue
		}
		if err := filesystem.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(log, "Error writing to %s: %v\n", out.Path, err)
			failures++
			continue
		}

		fmt.Fprintf(log, "Wrote %s\n", out.Path)
	}

	if failures > 0 {
		return fmt.Errorf("failed to generate %d output(s)", failures)
	}
	return nil
}
