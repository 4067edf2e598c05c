// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"path/filepath"

	"yotta-cli/pkg/appfile"
)

// AppOptions configures a startapp run.
type AppOptions struct {
	// Name becomes the app directory and its app reference.
	Name string
	// Root is the project root the app is created under. Empty means the
	// working directory.
	Root string
	// Force overwrites existing files.
	Force bool
}

const appInitTemplate = `// App metadata for %[1]s.

name: "%[1]s"
`

const appUITemplate = `// UI extensions for the %[1]s app. Styles declared here can refine the
// project theme for this app's output.

styles: {}
`

// App generates an app skeleton: an initializer, a command-definitions
// module with one example command, and a UI-extension module.
func App(opts AppOptions) (*Result, error) {
	if err := ValidateName("app", opts.Name); err != nil {
		return nil, err
	}

	dir := filepath.Join(opts.Root, opts.Name)
	res := &Result{}

	if err := res.writeFile(filepath.Join(dir, "app.cue"),
		fmt.Sprintf(appInitTemplate, opts.Name), opts.Force, 0o644); err != nil {
		return nil, err
	}

	example := appfile.Appfile{Commands: []appfile.Command{{
		Name:   "hello-" + opts.Name,
		Help:   fmt.Sprintf("example command generated with the %s app", opts.Name),
		Script: fmt.Sprintf("echo \"Hello from the %s app\"", opts.Name),
	}}}
	manifest := appfile.GenerateCUE(&example)
	if err := res.writeFile(filepath.Join(dir, appfile.AppfileName+".cue"),
		manifest, opts.Force, 0o644); err != nil {
		return nil, err
	}

	if err := res.writeFile(filepath.Join(dir, "ui.cue"),
		fmt.Sprintf(appUITemplate, opts.Name), opts.Force, 0o644); err != nil {
		return nil, err
	}

	return res, nil
}
