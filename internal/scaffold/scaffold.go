// SPDX-License-Identifier: MPL-2.0

// Package scaffold generates project, app and command skeletons. Existing
// files are never overwritten unless Force is set; conflicts are recorded
// in the Result and reported as notices, not errors.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"yotta-cli/internal/issue"
)

// Result lists what a scaffolding run did.
type Result struct {
	// Created holds paths of files written.
	Created []string
	// Skipped holds paths that already existed and were left alone.
	Skipped []string
}

var namePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// ValidateName checks that a project or app name is usable as a path
// segment and an app reference.
func ValidateName(kind, name string) error {
	if namePattern.MatchString(name) {
		return nil
	}
	return issue.NewErrorContext().
		WithOperation("validate " + kind + " name").
		WithResource(name).
		WithSuggestion("Use letters, digits and underscores, starting with a letter").
		Wrap(fmt.Errorf("invalid %s name %q", kind, name)).
		BuildError()
}

// writeFile writes content unless the target exists. Returns true when
// the file was written.
func (r *Result) writeFile(path, content string, force bool, mode os.FileMode) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			r.Skipped = append(r.Skipped, path)
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	r.Created = append(r.Created, path)
	return nil
}
