// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for parsing and validating CUE
// files against embedded schemas. It is used for both project settings
// files and app command manifests.
package cueutil
