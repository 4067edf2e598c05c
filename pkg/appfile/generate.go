// SPDX-License-Identifier: MPL-2.0

package appfile

import (
	"fmt"
	"strings"
)

// GenerateCUE generates commands.cue text from an Appfile struct. Used by
// the scaffolding commands to write starter manifests and to append new
// command blocks.
func GenerateCUE(a *Appfile) string {
	var sb strings.Builder

	sb.WriteString("// Command definitions for a yotta app.\n")
	sb.WriteString("// Run 'yotta' from the project root to see them on the CLI.\n\n")

	sb.WriteString("cmds: [\n")
	for i := range a.Commands {
		generateCommand(&sb, &a.Commands[i])
	}
	sb.WriteString("]\n")

	return sb.String()
}

func generateCommand(sb *strings.Builder, c *Command) {
	sb.WriteString("\t{\n")
	fmt.Fprintf(sb, "\t\tname: %q\n", c.Name)
	if c.Help != "" {
		fmt.Fprintf(sb, "\t\thelp: %q\n", c.Help)
	}

	if len(c.Args) > 0 {
		sb.WriteString("\t\targs: [\n")
		for _, arg := range c.Args {
			sb.WriteString("\t\t\t{")
			fmt.Fprintf(sb, "name: %q", arg.Name)
			if arg.Type != "" {
				fmt.Fprintf(sb, ", type: %q", arg.Type)
			}
			if arg.Help != "" {
				fmt.Fprintf(sb, ", help: %q", arg.Help)
			}
			sb.WriteString("},\n")
		}
		sb.WriteString("\t\t]\n")
	}

	if len(c.Flags) > 0 {
		sb.WriteString("\t\tflags: [\n")
		for _, flag := range c.Flags {
			sb.WriteString("\t\t\t{")
			fmt.Fprintf(sb, "name: %q", flag.Name)
			if flag.Short != "" {
				fmt.Fprintf(sb, ", short: %q", flag.Short)
			}
			if flag.Type != "" {
				fmt.Fprintf(sb, ", type: %q", flag.Type)
			}
			if flag.Default != "" {
				fmt.Fprintf(sb, ", default: %q", flag.Default)
			}
			if flag.Help != "" {
				fmt.Fprintf(sb, ", help: %q", flag.Help)
			}
			if flag.Required {
				sb.WriteString(", required: true")
			}
			sb.WriteString("},\n")
		}
		sb.WriteString("\t\t]\n")
	}

	if c.Script != "" {
		if strings.Contains(c.Script, "\n") {
			sb.WriteString("\t\tscript: \"\"\"\n")
			for _, line := range strings.Split(strings.TrimRight(c.Script, "\n"), "\n") {
				fmt.Fprintf(sb, "\t\t\t%s\n", line)
			}
			sb.WriteString("\t\t\t\"\"\"\n")
		} else {
			fmt.Fprintf(sb, "\t\tscript: %q\n", c.Script)
		}
	}

	sb.WriteString("\t},\n")
}
