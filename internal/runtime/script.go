// SPDX-License-Identifier: MPL-2.0

// Package runtime executes script-backed commands in an embedded POSIX
// shell. Manifest commands carry a script body instead of a Go function;
// this package parses and runs it without spawning /bin/sh, so scripted
// commands behave identically across platforms.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ScriptContext configures one script execution.
type ScriptContext struct {
	// Dir is the working directory. Empty means the process default.
	Dir string
	// Env is the full environment as KEY=value pairs. Nil inherits the
	// process environment.
	Env []string
	// Args become the script's positional parameters ($1, $2, ...).
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result reports how a script run ended.
type Result struct {
	// ExitCode is the script's exit status; 0 on success.
	ExitCode int
	// Error is set for failures other than a nonzero exit status.
	Error error
}

// Run parses and executes a script. A nonzero exit inside the script is
// reported through Result.ExitCode, not Result.Error.
func Run(ctx context.Context, script string, sc ScriptContext) *Result {
	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(script), "script")
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to parse script: %w", err)}
	}

	env := sc.Env
	if env == nil {
		env = os.Environ()
	}
	stdin := sc.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := sc.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := sc.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	opts := []interp.RunnerOption{
		interp.Dir(sc.Dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(stdin, stdout, stderr),
	}

	// Prepend "--" so args like "-v" are not taken for shell options.
	if len(sc.Args) > 0 {
		params := append([]string{"--"}, sc.Args...)
		opts = append(opts, interp.Params(params...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return &Result{ExitCode: 1, Error: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &Result{ExitCode: int(exitStatus)}
		}
		return &Result{ExitCode: 1, Error: fmt.Errorf("script execution failed: %w", err)}
	}

	return &Result{ExitCode: 0}
}
