// SPDX-License-Identifier: MPL-2.0

package conf

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"

	"yotta-cli/internal/issue"
)

const (
	// SettingsModuleVar names the settings CUE file (without extension).
	SettingsModuleVar = "YOTTA_SETTINGS_MODULE"
	// EnvVar is the environment shorthand; "prod" resolves the settings
	// module to "settings_prod".
	EnvVar = "YOTTA_ENV"
	// DebugVar enables full diagnostics on discovery failures.
	DebugVar = "YOTTA_DEBUG"

	// DefaultSettingsModule is what scaffolded projects start with.
	DefaultSettingsModule = "settings"

	settingsModulePrefix = "settings_"
)

// Environ captures the process environment variables the framework reads.
type Environ struct {
	SettingsModule string `env:"YOTTA_SETTINGS_MODULE"`
	Env            string `env:"YOTTA_ENV"`
	Debug          bool   `env:"YOTTA_DEBUG"`
}

// ReadEnviron decodes the framework's variables from the process
// environment.
func ReadEnviron() (Environ, error) {
	return env.ParseAs[Environ]()
}

// ResolveSettingsModule determines the settings module name. An explicit
// YOTTA_SETTINGS_MODULE wins; otherwise YOTTA_ENV derives one, and the
// derived name is written back to YOTTA_SETTINGS_MODULE so child processes
// and later lookups observe the resolution. With neither set, a
// configuration error names the expected variable.
func ResolveSettingsModule(e Environ) (string, error) {
	if e.SettingsModule != "" {
		return e.SettingsModule, nil
	}

	if e.Env != "" {
		module := settingsModulePrefix + e.Env
		if err := os.Setenv(SettingsModuleVar, module); err != nil {
			return "", err
		}
		return module, nil
	}

	return "", issue.NewErrorContext().
		WithOperation("resolve settings module").
		WithResource(SettingsModuleVar).
		WithSuggestion("Set YOTTA_SETTINGS_MODULE to your settings module name (e.g. 'settings')").
		WithSuggestion("Or set YOTTA_ENV to an environment shorthand (e.g. 'dev' for 'settings_dev')").
		WithSuggestion("Run 'yotta startproject <name>' to scaffold a project with settings included").
		Wrap(errors.New("no settings module configured")).
		BuildError()
}
