// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"yotta-cli/internal/conf"
)

// StarterAppName is the app every new project starts with.
const StarterAppName = "core"

// ProjectOptions configures a startproject run.
type ProjectOptions struct {
	// Name becomes the project directory name.
	Name string
	// Dir is the parent directory. Empty means the working directory.
	Dir string
	// SettingsModule names the settings file. Empty means "settings".
	SettingsModule string
	// Force overwrites existing files.
	Force bool
}

// projectManifest is the shape of the generated yotta.toml.
type projectManifest struct {
	Project struct {
		Name           string `toml:"name"`
		Version        string `toml:"version"`
		SettingsModule string `toml:"settings_module"`
	} `toml:"project"`
}

const entrypointTemplate = `#!/usr/bin/env sh
# Entry point for the %[1]s project. Pins the settings module so the
# project works from a fresh shell, then delegates to yotta.
export %[2]s="${%[2]s:-%[3]s}"
exec yotta "$@"
`

const settingsTemplate = `// Settings for the %[1]s project.

installed_apps: [
	"%[2]s",
]

theme: "default"
debug: false
`

const envExampleTemplate = `# Copy to .env and adjust. Values in .env fill variables the shell has
# not set; .env.local always overrides.
%[1]s=%[2]s
# %[3]s=dev
# %[4]s=true
`

// Project generates a new project skeleton: an entry-point script, a
// settings module, a packaging manifest, an environment-file template and
// a starter app.
func Project(opts ProjectOptions) (*Result, error) {
	if err := ValidateName("project", opts.Name); err != nil {
		return nil, err
	}

	settingsModule := opts.SettingsModule
	if settingsModule == "" {
		settingsModule = conf.DefaultSettingsModule
	}

	root := filepath.Join(opts.Dir, opts.Name)
	res := &Result{}

	entrypoint := fmt.Sprintf(entrypointTemplate, opts.Name, conf.SettingsModuleVar, settingsModule)
	if err := res.writeFile(filepath.Join(root, "manage"), entrypoint, opts.Force, 0o755); err != nil {
		return nil, err
	}

	settings := fmt.Sprintf(settingsTemplate, opts.Name, StarterAppName)
	settingsFile := settingsModule + "." + conf.SettingsFileExt
	if err := res.writeFile(filepath.Join(root, settingsFile), settings, opts.Force, 0o644); err != nil {
		return nil, err
	}

	var manifest projectManifest
	manifest.Project.Name = opts.Name
	manifest.Project.Version = "0.1.0"
	manifest.Project.SettingsModule = settingsModule
	manifestBytes, err := toml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to render project manifest: %w", err)
	}
	if err := res.writeFile(filepath.Join(root, "yotta.toml"), string(manifestBytes), opts.Force, 0o644); err != nil {
		return nil, err
	}

	envExample := fmt.Sprintf(envExampleTemplate,
		conf.SettingsModuleVar, settingsModule, conf.EnvVar, conf.DebugVar)
	if err := res.writeFile(filepath.Join(root, ".env.example"), envExample, opts.Force, 0o644); err != nil {
		return nil, err
	}

	appRes, err := App(AppOptions{Name: StarterAppName, Root: root, Force: opts.Force})
	if err != nil {
		return nil, err
	}
	res.Created = append(res.Created, appRes.Created...)
	res.Skipped = append(res.Skipped, appRes.Skipped...)

	return res, nil
}
