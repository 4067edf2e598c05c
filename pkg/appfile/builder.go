// SPDX-License-Identifier: MPL-2.0

package appfile

// Builder assembles a Command through a fluent chain. Go apps use it to
// declare commands in code instead of a commands.cue manifest:
//
//	appfile.New("greet").
//		Help("print a greeting").
//		Arg("name", "str").
//		Flag(appfile.Flag{Name: "shout", Type: "bool"}).
//		Run(func(ctx *appfile.Context, inv *appfile.Invocation) error { ... })
type Builder struct {
	cmd Command
}

// New starts building a command with the given name.
func New(name string) *Builder {
	return &Builder{cmd: Command{Name: name}}
}

// Help sets the one-line help text.
func (b *Builder) Help(text string) *Builder {
	b.cmd.Help = text
	return b
}

// Arg appends a positional argument. The type is a parameter type alias
// such as "str", "int", "email" or "uuid".
func (b *Builder) Arg(name, paramType string) *Builder {
	b.cmd.Args = append(b.cmd.Args, Argument{Name: name, Type: paramType})
	return b
}

// ArgHelp appends a positional argument with help text.
func (b *Builder) ArgHelp(name, paramType, help string) *Builder {
	b.cmd.Args = append(b.cmd.Args, Argument{Name: name, Type: paramType, Help: help})
	return b
}

// Flag appends a named flag.
func (b *Builder) Flag(f Flag) *Builder {
	b.cmd.Flags = append(b.cmd.Flags, f)
	return b
}

// Run finalizes the command with a Go function body.
func (b *Builder) Run(fn RunFunc) *Command {
	b.cmd.Run = fn
	cmd := b.cmd
	return &cmd
}

// Script finalizes the command with a shell script body.
func (b *Builder) Script(src string) *Command {
	b.cmd.Script = src
	cmd := b.cmd
	return &cmd
}
