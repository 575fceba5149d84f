/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser decodes typography input documents.
//
// Inputs may be JSON, JSON with comments and trailing commas, or YAML.
package parser

import (
	"errors"

	"bennypowers.dev/typescale/fs"
	"bennypowers.dev/typescale/typography"
)

var (
	// ErrEmptyInput is returned for documents with no content.
	ErrEmptyInput = errors.New("empty input document")

	// ErrNoTypography is returned for documents whose root, after unwrapping a
	// "typography" envelope, declares none of the typography input members.
	ErrNoTypography = errors.New("document declares no typography input")
)

// Options configures input parsing.
type Options struct {
	// Strict rejects fields that typography.Input does not declare.
	Strict bool
}

// Parser parses typography input documents.
type Parser interface {
	// Parse parses input data.
	Parse(data []byte, opts Options) (*typography.Input, error)

	// ParseFile reads and parses an input file.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*typography.Input, error)
}
