// SPDX-License-Identifier: MPL-2.0

package conf

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"yotta-cli/internal/issue"
	"yotta-cli/pkg/cueutil"
)

// SettingsFileExt is the settings module file extension.
const SettingsFileExt = "cue"

//go:embed settings_schema.cue
var settingsSchema string

// Settings is the typed view of a project's settings module. Arbitrary
// extra keys declared in the module are reachable through Get.
type Settings struct {
	// InstalledApps lists app paths in precedence order.
	InstalledApps []string `mapstructure:"installed_apps"`
	// Theme selects the console color theme.
	Theme string `mapstructure:"theme"`
	// Debug enables full diagnostics on discovery failures.
	Debug bool `mapstructure:"debug"`

	// Module is the resolved settings module name (e.g. "settings_dev").
	Module string `mapstructure:"-"`
	// RootDir is the project root the module was loaded from.
	RootDir string `mapstructure:"-"`
	// FilePath is the settings file that was loaded.
	FilePath string `mapstructure:"-"`

	v *viper.Viper
}

// Get returns the value of an arbitrary setting by key. Keys the module
// does not define fail with an UnknownSettingError.
func (s *Settings) Get(key string) (any, error) {
	if s.v == nil || !s.v.IsSet(key) {
		return nil, &UnknownSettingError{Key: key, Module: s.Module}
	}
	return s.v.Get(key), nil
}

// GetString returns a string-typed setting, or the empty string with an
// UnknownSettingError when the key is not defined.
func (s *Settings) GetString(key string) (string, error) {
	if s.v == nil || !s.v.IsSet(key) {
		return "", &UnknownSettingError{Key: key, Module: s.Module}
	}
	return s.v.GetString(key), nil
}

// Load returns the process-wide settings, resolving and reading them on
// first call and serving the cached value afterwards. See the package
// documentation for the resolution order.
func Load() (*Settings, error) {
	if cached != nil {
		return cached, nil
	}
	if cachedErr != nil {
		return nil, cachedErr
	}

	s, err := load()
	if err != nil {
		cachedErr = err
		return nil, err
	}
	cached = s
	return s, nil
}

func load() (*Settings, error) {
	root, err := rootDir()
	if err != nil {
		return nil, err
	}

	if err := ApplyEnvFiles(root); err != nil {
		return nil, fmt.Errorf("failed to apply env files: %w", err)
	}

	environ, err := ReadEnviron()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	module, err := ResolveSettingsModule(environ)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(root, module+"."+SettingsFileExt)
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load settings").
			WithResource(path).
			WithSuggestion("Check that YOTTA_SETTINGS_MODULE names an existing settings file").
			WithSuggestion("Run yotta from the project root (or set YOTTA_ROOT)").
			Wrap(fmt.Errorf("settings module %q not found: %w", module, statErr)).
			BuildError()
	}

	v := viper.New()
	v.SetDefault("installed_apps", []string{})
	v.SetDefault("theme", "default")
	v.SetDefault("debug", environ.Debug)

	if err := loadCUEIntoViper(v, path); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load settings").
			WithResource(path).
			WithSuggestion("Check that the file contains valid CUE syntax").
			WithSuggestion("Verify the values match the settings schema").
			Wrap(err).
			BuildError()
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	s.Module = module
	s.RootDir = root
	s.FilePath = path
	s.v = v

	return &s, nil
}

// loadCUEIntoViper parses a settings file, validates it against the
// embedded #Settings schema and merges the result into Viper. Uses
// Concrete(false) since every settings field is optional, and decodes to
// a map so Viper can serve arbitrary keys.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(settingsSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile settings schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Settings"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var settingsMap map[string]any
	if err := unified.Decode(&settingsMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	return v.MergeConfigMap(settingsMap)
}
