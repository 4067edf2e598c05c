// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps semantic style keys to colors. Colors are hex values chosen
// for dark terminal backgrounds with good contrast.
type Theme struct {
	// Name is the registry key of the theme.
	Name string

	// Primary is used for borders, emphasis and interactive prompts.
	Primary lipgloss.Color
	// Secondary is used for subtitles and de-emphasized accents.
	Secondary lipgloss.Color
	// Success is used for success states and checkmarks.
	Success lipgloss.Color
	// Warning is used for warnings and caution states.
	Warning lipgloss.Color
	// Error is used for errors and failure indicators.
	Error lipgloss.Color
	// Info is used for informational output.
	Info lipgloss.Color
	// Header is used for section headers and panel titles.
	Header lipgloss.Color
}

// DefaultTheme is the built-in palette used when no theme is configured or
// the configured name is unknown.
var DefaultTheme = Theme{
	Name:      "default",
	Primary:   lipgloss.Color("#FF4500"),
	Secondary: lipgloss.Color("#22D3EE"),
	Success:   lipgloss.Color("#10B981"),
	Warning:   lipgloss.Color("#F59E0B"),
	Error:     lipgloss.Color("#EF4444"),
	Info:      lipgloss.Color("#8B5CF6"),
	Header:    lipgloss.Color("#FF4500"),
}

// DarkTheme is a built-in alternate palette with a neon accent.
var DarkTheme = Theme{
	Name:      "dark",
	Primary:   lipgloss.Color("#00BFFF"),
	Secondary: lipgloss.Color("#F472B6"),
	Success:   lipgloss.Color("#00FF7F"),
	Warning:   lipgloss.Color("#FFD700"),
	Error:     lipgloss.Color("#FF69B4"),
	Info:      lipgloss.Color("#1E90FF"),
	Header:    lipgloss.Color("#00BFFF"),
}

var themes = map[string]Theme{
	"default": DefaultTheme,
	"dark":    DarkTheme,
}

// ResolveTheme resolves a theme name with a safe fallback: unknown or empty
// names return DefaultTheme. Matching ignores case and surrounding space.
func ResolveTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return DefaultTheme
}

// ThemeNames returns the registered theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}
