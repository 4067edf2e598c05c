// SPDX-License-Identifier: MPL-2.0

package conf

import "os"

// RootDirVar optionally points the loader at a project root other than
// the working directory.
const RootDirVar = "YOTTA_ROOT"

// rootDirOverride allows tests to pin the project root without touching
// the process environment or working directory.
var rootDirOverride string

var (
	cached    *Settings
	cachedErr error
)

// SetRootDirOverride pins the project root. Primarily for tests.
func SetRootDirOverride(dir string) {
	rootDirOverride = dir
}

// Reset clears the settings cache and the root override. Call from test
// cleanup to restore defaults.
func Reset() {
	rootDirOverride = ""
	cached = nil
	cachedErr = nil
}

func rootDir() (string, error) {
	if rootDirOverride != "" {
		return rootDirOverride, nil
	}
	if dir := os.Getenv(RootDirVar); dir != "" {
		return dir, nil
	}
	return os.Getwd()
}
