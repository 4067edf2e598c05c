// SPDX-License-Identifier: MPL-2.0

// Package loader discovers and merges commands from installed apps.
//
// Given the ordered app list from settings, the loader resolves each
// app's commands (a Go registration or an on-disk commands.cue manifest)
// and merges them into one name-to-command mapping. App order defines
// collision precedence: by default the later app wins and a warning names
// both sources. Strict mode turns every discovery anomaly (missing
// commands module, load failure, duplicate name) into an abort.
package loader
