// SPDX-License-Identifier: MPL-2.0

package appfile

// AppfileName is the base name of the command manifest inside an app
// directory ("commands.cue").
const AppfileName = "commands"

// Appfile holds the command definitions declared by one app.
type Appfile struct {
	// Commands defines the app's commands (manifest field: 'cmds').
	Commands []Command `json:"cmds"`

	// FilePath records where this manifest was loaded from (not in CUE).
	FilePath string `json:"-"`
}

// GetCommand finds a command by name, or nil.
func (a *Appfile) GetCommand(name string) *Command {
	if name == "" {
		return nil
	}
	for i := range a.Commands {
		if a.Commands[i].Name == name {
			return &a.Commands[i]
		}
	}
	return nil
}
