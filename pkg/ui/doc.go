// SPDX-License-Identifier: MPL-2.0

// Package ui provides the themed console facade used by yotta commands:
// headers, status lines, tables, panels, prompts, spinners, progress bars
// and markdown rendering. Output styling is driven by a named theme with a
// safe fallback to the default palette.
package ui
