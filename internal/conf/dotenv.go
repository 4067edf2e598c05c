// SPDX-License-Identifier: MPL-2.0

package conf

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvFileName fills process variables that are not already set.
	EnvFileName = ".env"
	// LocalEnvFileName always overrides, including values from EnvFileName.
	LocalEnvFileName = ".env.local"
)

// ApplyEnvFiles merges the conventional dotenv files from dir into the
// process environment. Missing files are fine. ".env" only fills variables
// the process does not already have; ".env.local" always overrides.
func ApplyEnvFiles(dir string) error {
	base := ParseEnvFileAt(filepath.Join(dir, EnvFileName))
	for key, value := range base {
		if _, set := os.LookupEnv(key); !set {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	local := ParseEnvFileAt(filepath.Join(dir, LocalEnvFileName))
	for key, value := range local {
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}

	return nil
}

// ParseEnvFileAt reads and parses a dotenv file, returning an empty map
// when the file does not exist or cannot be read.
func ParseEnvFileAt(path string) map[string]string {
	content, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}
	}
	return ParseEnvFile(content)
}

// ParseEnvFile parses dotenv content into a key/value map. Supported
// format:
//   - Lines starting with # are comments
//   - Empty lines and lines without '=' are skipped
//   - KEY=value (unquoted, inline ' #' comments stripped)
//   - KEY="value" and KEY='value' (surrounding quotes stripped)
//   - export KEY=value (export prefix ignored)
func ParseEnvFile(content []byte) map[string]string {
	env := make(map[string]string)

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimPrefix(line, "export ")
		line = strings.TrimSpace(line)

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		env[key] = parseEnvValue(value)
	}

	return env
}

func parseEnvValue(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}

	// Unquoted values may carry a trailing comment.
	if idx := strings.Index(value, " #"); idx != -1 {
		value = strings.TrimSpace(value[:idx])
	}

	return value
}
