// SPDX-License-Identifier: MPL-2.0

package appfile

import (
	_ "embed"
	"fmt"
	"os"

	"yotta-cli/pkg/cueutil"
)

//go:embed appfile_schema.cue
var appfileSchema string

// Parse reads and parses a command manifest from the given path.
func Parse(path string) (*Appfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command manifest at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses manifest content from bytes. The manifest is validated
// against the embedded schema before decoding; schema violations surface
// with the file name and a path to the offending field.
func ParseBytes(data []byte, path string) (*Appfile, error) {
	result, err := cueutil.ParseAndDecodeString[Appfile](
		appfileSchema,
		data,
		"#Appfile",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(true),
	)
	if err != nil {
		return nil, err
	}

	a := result.Value
	a.FilePath = path

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// validate enforces constraints the schema cannot express.
func (a *Appfile) validate() error {
	seen := make(map[string]bool, len(a.Commands))
	for i := range a.Commands {
		c := &a.Commands[i]
		if seen[c.Name] {
			return fmt.Errorf("cmds[%d]: duplicate command name %q within one app", i, c.Name)
		}
		seen[c.Name] = true

		// Manifest commands have no other body to run.
		if c.Script == "" {
			return fmt.Errorf("cmds[%d]: command %q declares no script", i, c.Name)
		}

		argNames := make(map[string]bool, len(c.Args))
		for j, arg := range c.Args {
			if argNames[arg.Name] {
				return fmt.Errorf("cmds[%d].args[%d]: duplicate argument name %q", i, j, arg.Name)
			}
			argNames[arg.Name] = true
		}

		flagNames := make(map[string]bool, len(c.Flags))
		for j, flag := range c.Flags {
			if flagNames[flag.Name] {
				return fmt.Errorf("cmds[%d].flags[%d]: duplicate flag name %q", i, j, flag.Name)
			}
			flagNames[flag.Name] = true
		}
	}
	return nil
}
