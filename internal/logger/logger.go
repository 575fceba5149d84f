/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide diagnostic logger.
// Output goes to stderr and is silenced while serving MCP over stdio.
package logger

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	output  io.Writer = os.Stderr
	logger  *log.Logger
	verbose atomic.Bool
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Verbose reports whether Debug output is enabled.
func Verbose() bool {
	return verbose.Load()
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Debug logs a message only when verbose output is enabled.
func Debug(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	logger.Printf("debug: "+format, args...)
}
