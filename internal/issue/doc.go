// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing errors with remediation
// suggestions. Configuration failures (unresolvable settings module,
// unreadable settings file) are reported through this package so the user
// always sees what failed and how to fix it.
package issue
