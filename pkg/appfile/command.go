// SPDX-License-Identifier: MPL-2.0

package appfile

type (
	// Command is a named, invocable unit with declared parameters. Commands
	// are treated as immutable once built or parsed; a discovery pass never
	// mutates them.
	Command struct {
		// Name is the command name as used on the CLI. Unique within the
		// merged namespace; the loader's collision policy decides what
		// happens when two apps declare the same name.
		Name string `json:"name"`
		// Help is the one-line description shown in command listings.
		Help string `json:"help,omitempty"`
		// Args declares positional arguments in order.
		Args []Argument `json:"args,omitempty"`
		// Flags declares options and boolean flags.
		Flags []Flag `json:"flags,omitempty"`
		// Script is the shell body for manifest-declared commands. Mutually
		// exclusive with Run.
		Script string `json:"script,omitempty"`

		// Run is the callable for commands built in Go (not in CUE).
		Run RunFunc `json:"-"`
	}

	// Argument declares a positional argument.
	Argument struct {
		// Name identifies the argument in help output and the invocation.
		Name string `json:"name"`
		// Type is a short type alias ("email", "uuid", "port", ...) resolved
		// against the parameter type registry. Empty means string.
		Type string `json:"type,omitempty"`
		// Help is optional help text.
		Help string `json:"help,omitempty"`
	}

	// Flag declares an option or boolean flag.
	Flag struct {
		// Name is the long flag name (without dashes).
		Name string `json:"name"`
		// Short is an optional single-letter alias.
		Short string `json:"short,omitempty"`
		// Type is a short type alias; "bool" or "flag" makes this a boolean
		// flag with no value. Empty means string.
		Type string `json:"type,omitempty"`
		// Default is the default value as written on the command line.
		Default string `json:"default,omitempty"`
		// Help is optional help text.
		Help string `json:"help,omitempty"`
		// Required marks the flag as mandatory.
		Required bool `json:"required,omitempty"`
	}

	// RunFunc is the signature of a Go-implemented command body. The
	// context bundles the themed console and lazy settings access; the
	// invocation carries the converted argument and flag values.
	RunFunc func(*Context, *Invocation) error
)

// IsScript reports whether the command is backed by a shell script rather
// than a Go callable.
func (c *Command) IsScript() bool {
	return c.Run == nil && c.Script != ""
}
