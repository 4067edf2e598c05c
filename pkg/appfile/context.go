// SPDX-License-Identifier: MPL-2.0

package appfile

import (
	"yotta-cli/internal/conf"
	"yotta-cli/pkg/ui"
)

// Context is the first argument passed to every RunFunc. It bundles the
// themed console and lazy access to project settings.
type Context struct {
	// UI is the themed console for all command output.
	UI *ui.Console

	settings *conf.Settings
}

// NewContext builds a context around the given settings. A nil settings
// value is allowed; Settings then loads on first use.
func NewContext(settings *conf.Settings) *Context {
	theme := ""
	if settings != nil {
		theme = settings.Theme
	}
	return &Context{
		UI:       ui.NewConsole(ui.WithTheme(theme)),
		settings: settings,
	}
}

// Settings returns the project settings, loading them on first access
// when the context was built without any.
func (c *Context) Settings() (*conf.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	s, err := conf.Load()
	if err != nil {
		return nil, err
	}
	c.settings = s
	return s, nil
}
