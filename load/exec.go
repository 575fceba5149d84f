/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ProcessExitError reports an input command that exited unsuccessfully.
// The CLI exits with the same code.
type ProcessExitError struct {
	Command string
	Code    int
}

func (e *ProcessExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.Code)
}

// Runner runs an input command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) ([]byte, error)
}

// CommandRunner runs commands with os/exec.
type CommandRunner struct {
	// Stderr receives the command's stderr. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewCommandRunner creates a runner that forwards stderr to os.Stderr.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{Stderr: os.Stderr}
}

// Run executes argv in dir.
func (r *CommandRunner) Run(ctx context.Context, dir string, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}
	command := strings.Join(argv, " ")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.WaitDelay = time.Second
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("timeout running %s: %w", command, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ProcessExitError{Command: command, Code: exitErr.ExitCode()}
		}
		return nil, fmt.Errorf("running %s: %w", command, err)
	}
	return out, nil
}
