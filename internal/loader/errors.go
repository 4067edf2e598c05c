// SPDX-License-Identifier: MPL-2.0

package loader

import "fmt"

// NoCommandsModuleError reports an installed app with neither a Go
// registration nor a commands.cue manifest. Non-fatal by default; fatal
// in strict mode.
type NoCommandsModuleError struct {
	// App is the app path as listed in installed_apps.
	App string
	// Path is the manifest location that was checked.
	Path string
}

func (e *NoCommandsModuleError) Error() string {
	return fmt.Sprintf("app %q has no commands module (expected %s or a Go registration)", e.App, e.Path)
}

// DuplicateCommandError reports a command name produced by two different
// apps while the loader runs in strict mode.
type DuplicateCommandError struct {
	Name      string
	FirstApp  string
	SecondApp string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf(
		"command name collision: '%s' defined in both:\n"+
			"  - %s\n"+
			"  - %s\n\n"+
			"Rename one of the commands, or reorder installed_apps if the later app should win",
		e.Name, e.FirstApp, e.SecondApp)
}
