// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"yotta-cli/pkg/appfile"
	"yotta-cli/pkg/apps"
)

// Options configures a discovery pass.
type Options struct {
	// Root is the project root manifest apps are resolved under.
	Root string
	// Strict aborts the pass on any discovery anomaly instead of
	// logging and skipping.
	Strict bool
	// Quiet suppresses info and warning lines. Errors always print.
	Quiet bool
	// Verbose enables debug lines. Quiet wins when both are set.
	Verbose bool
	// Logger receives discovery diagnostics. Defaults to stderr.
	Logger *log.Logger
	// Registry resolves Go-implemented apps. Defaults to apps.Default().
	Registry *apps.Registry
}

// DiscoveredCommand is a command together with the app that produced it.
type DiscoveredCommand struct {
	*appfile.Command

	// App is the path of the app this command came from.
	App string
}

// Loader merges commands from installed apps into a single namespace.
type Loader struct {
	root     string
	strict   bool
	logger   *log.Logger
	registry *apps.Registry
}

// New builds a loader. Quiet and verbose only move the logger's level;
// they never change strict/non-strict control flow.
func New(opts Options) *Loader {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	} else {
		// Level the copy, not the caller's logger.
		logger = logger.With()
	}
	switch {
	case opts.Quiet:
		logger.SetLevel(log.ErrorLevel)
	case opts.Verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}

	registry := opts.Registry
	if registry == nil {
		registry = apps.Default()
	}

	return &Loader{
		root:     opts.Root,
		strict:   opts.Strict,
		logger:   logger,
		registry: registry,
	}
}

// Commands produces the merged command mapping for the given app list,
// in order. Non-fatal anomalies are logged and skipped; under strict
// mode the first anomaly aborts the pass and no mapping is returned.
// Each pass resolves from scratch; nothing is retained between calls.
func (l *Loader) Commands(installedApps []string) (map[string]*DiscoveredCommand, error) {
	merged := make(map[string]*DiscoveredCommand)

	for _, app := range installedApps {
		cmds, err := l.loadApp(app)
		if err != nil {
			var missing *NoCommandsModuleError
			if errors.As(err, &missing) {
				if l.strict {
					return nil, err
				}
				l.logger.Warn("app has no commands module, skipping", "app", app)
				continue
			}

			if l.strict {
				return nil, err
			}
			l.logger.Error("failed to load app commands, skipping", "app", app, "err", err)
			continue
		}

		if len(cmds) == 0 {
			l.logger.Debug("app defines no commands", "app", app)
			continue
		}

		for _, cmd := range cmds {
			if cmd == nil || cmd.Name == "" {
				l.logger.Warn("skipping command with no name", "app", app)
				continue
			}

			if prev, exists := merged[cmd.Name]; exists {
				if l.strict {
					return nil, &DuplicateCommandError{
						Name:      cmd.Name,
						FirstApp:  prev.App,
						SecondApp: app,
					}
				}
				l.logger.Warn("duplicate command name, later app wins",
					"command", cmd.Name, "first", prev.App, "second", app)
			}

			merged[cmd.Name] = &DiscoveredCommand{Command: cmd, App: app}
		}

		l.logger.Debug("merged app commands", "app", app, "count", len(cmds))
	}

	return merged, nil
}

// loadApp resolves one app's commands. The registry wins over an on-disk
// manifest when both exist.
func (l *Loader) loadApp(app string) ([]*appfile.Command, error) {
	if registered, ok := l.registry.Lookup(app); ok {
		return callProvider(registered)
	}

	path := ManifestPath(l.root, app)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NoCommandsModuleError{App: app, Path: path}
		}
		return nil, fmt.Errorf("failed to stat commands module for app %q: %w", app, err)
	}

	parsed, err := appfile.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load commands for app %q: %w", app, err)
	}

	cmds := make([]*appfile.Command, len(parsed.Commands))
	for i := range parsed.Commands {
		cmds[i] = &parsed.Commands[i]
	}
	return cmds, nil
}

// callProvider invokes a registered app's commands function, converting a
// panic inside the app's own code into a load failure for that app only.
func callProvider(app apps.App) (cmds []*appfile.Command, err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(error); ok {
				err = fmt.Errorf("panic while loading commands for app %q: %w", app.Path, perr)
			} else {
				err = fmt.Errorf("panic while loading commands for app %q: %v", app.Path, r)
			}
		}
	}()

	if app.Commands == nil {
		return nil, nil
	}

	cmds, err = app.Commands()
	if err != nil {
		return nil, fmt.Errorf("failed to load commands for app %q: %w", app.Path, err)
	}
	return cmds, nil
}

// ManifestPath maps an app path like "proj.billing" to its commands.cue
// location under root.
func ManifestPath(root, app string) string {
	rel := filepath.FromSlash(strings.ReplaceAll(app, ".", "/"))
	return filepath.Join(root, rel, appfile.AppfileName+".cue")
}
