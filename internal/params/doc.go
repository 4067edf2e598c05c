// SPDX-License-Identifier: MPL-2.0

// Package params provides the catalog of parameter types used to convert
// raw command-line tokens into typed values. Each type validates its input
// and reports a descriptive reason on failure; values are never silently
// coerced.
package params
