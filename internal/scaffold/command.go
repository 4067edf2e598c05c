// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"os"

	"yotta-cli/internal/issue"
	"yotta-cli/internal/loader"
	"yotta-cli/pkg/appfile"
)

// CommandOptions configures a startcommand run.
type CommandOptions struct {
	// Name is the new command's name.
	Name string
	// App is the app reference the command is added to.
	App string
	// Root is the project root. Empty means the working directory.
	Root string
	// Force replaces an existing command with the same name.
	Force bool
}

// Command appends a stub command to an existing app's commands module.
// An existing command with the same name is left alone (recorded as
// skipped) unless Force is set.
func Command(opts CommandOptions) (*Result, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("command name is required")
	}

	path := loader.ManifestPath(opts.Root, opts.App)
	if _, err := os.Stat(path); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("add command").
			WithResource(path).
			WithSuggestion(fmt.Sprintf("Run 'yotta startapp %s' first", opts.App)).
			WithSuggestion("Check that the app name matches a directory under the project root").
			Wrap(fmt.Errorf("app %q has no commands module: %w", opts.App, err)).
			BuildError()
	}

	parsed, err := appfile.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing commands for app %q: %w", opts.App, err)
	}

	res := &Result{}
	stub := appfile.Command{
		Name:   opts.Name,
		Help:   fmt.Sprintf("describe what %s does", opts.Name),
		Script: fmt.Sprintf("echo \"%s is not implemented yet\"", opts.Name),
	}

	if existing := parsed.GetCommand(opts.Name); existing != nil {
		if !opts.Force {
			res.Skipped = append(res.Skipped, path)
			return res, nil
		}
		*existing = stub
	} else {
		parsed.Commands = append(parsed.Commands, stub)
	}

	generated := appfile.GenerateCUE(parsed)
	// Never leave a manifest behind that the loader would reject.
	if _, err := appfile.ParseBytes([]byte(generated), path); err != nil {
		return nil, fmt.Errorf("generated manifest for command %q is invalid: %w", opts.Name, err)
	}
	if err := os.WriteFile(path, []byte(generated), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	res.Created = append(res.Created, path)
	return res, nil
}
