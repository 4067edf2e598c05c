// SPDX-License-Identifier: MPL-2.0

// Package apps holds the registry of Go-implemented apps. An app built in
// Go registers itself under its app path, typically from an init function:
//
//	func init() {
//		apps.Register(apps.App{
//			Path:     "ops.reporting",
//			Commands: Commands,
//		})
//	}
//
// The command loader looks installed app paths up here first; paths with
// no registration fall back to an on-disk commands.cue manifest.
package apps

import "yotta-cli/pkg/appfile"

// CommandsFunc produces an app's command definitions.
type CommandsFunc func() ([]*appfile.Command, error)

// App contributes a self-describing set of named commands.
type App struct {
	// Path is the app reference as listed in installed_apps.
	Path string
	// Commands produces the app's command definitions. Called once per
	// discovery pass; an error or panic here counts as a load failure for
	// this app only.
	Commands CommandsFunc
}

// Registry maps app paths to registered apps.
type Registry struct {
	apps map[string]App
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{apps: make(map[string]App)}
}

// Register adds or replaces an app. Registering the same path twice keeps
// the later registration.
func (r *Registry) Register(app App) {
	r.apps[app.Path] = app
}

// Lookup finds an app by path.
func (r *Registry) Lookup(path string) (App, bool) {
	app, ok := r.apps[path]
	return app, ok
}

// Paths returns the registered app paths in unspecified order.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.apps))
	for path := range r.apps {
		paths = append(paths, path)
	}
	return paths
}

// defaultRegistry backs the package-level helpers.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds an app to the process-wide registry.
func Register(app App) {
	defaultRegistry.Register(app)
}

// Reset replaces the process-wide registry with an empty one. For tests.
func Reset() {
	defaultRegistry = NewRegistry()
}
