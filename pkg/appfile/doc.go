// SPDX-License-Identifier: MPL-2.0

// Package appfile defines yotta command objects and the commands.cue
// manifest format through which apps declare them. Commands come from two
// places: Go apps build them with the Builder API and register through
// pkg/apps, while manifest apps declare them in a commands.cue file whose
// script bodies run in the virtual shell.
package appfile
