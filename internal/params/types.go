// SPDX-License-Identifier: MPL-2.0

package params

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Type converts a raw command-line token into a typed value.
type Type interface {
	// Name is the human-readable type name shown in help and error output.
	Name() string
	// Convert parses value or returns an error describing why it is invalid.
	Convert(value string) (any, error)
}

// --- Passthrough types ---

// StringType accepts any value unchanged.
type StringType struct{}

// Name implements Type.
func (StringType) Name() string { return "string" }

// Convert implements Type.
func (StringType) Convert(value string) (any, error) { return value, nil }

// IntType parses a base-10 integer.
type IntType struct{}

// Name implements Type.
func (IntType) Name() string { return "int" }

// Convert implements Type.
func (IntType) Convert(value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a valid integer", value)
	}
	return n, nil
}

// FloatType parses a floating-point number.
type FloatType struct{}

// Name implements Type.
func (FloatType) Name() string { return "float" }

// Convert implements Type.
func (FloatType) Convert(value string) (any, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a valid number", value)
	}
	return f, nil
}

// BoolType parses common boolean spellings (true/false, yes/no, 1/0, on/off).
type BoolType struct{}

// Name implements Type.
func (BoolType) Name() string { return "bool" }

// Convert implements Type.
func (BoolType) Convert(value string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off", "":
		return false, nil
	}
	return nil, fmt.Errorf("'%s' is not a valid boolean", value)
}

// --- Validating types ---

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmailType accepts addresses of the shape local@domain.tld.
type EmailType struct{}

// Name implements Type.
func (EmailType) Name() string { return "email" }

// Convert implements Type.
func (EmailType) Convert(value string) (any, error) {
	if emailPattern.MatchString(value) {
		return value, nil
	}
	return nil, fmt.Errorf("'%s' is not a valid email address", value)
}

// UUIDType parses an RFC 4122 UUID.
type UUIDType struct{}

// Name implements Type.
func (UUIDType) Name() string { return "uuid" }

// Convert implements Type.
func (UUIDType) Convert(value string) (any, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a valid UUID", value)
	}
	return id, nil
}

// URLType accepts http:// and https:// URLs.
type URLType struct{}

// Name implements Type.
func (URLType) Name() string { return "url" }

// Convert implements Type.
func (URLType) Convert(value string) (any, error) {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value, nil
	}
	return nil, fmt.Errorf("'%s' is not a valid URL (must start with http:// or https://)", value)
}

// JSONType accepts either an inline JSON document or a path to a JSON file.
// It returns the decoded value (map, slice, string, number, bool or nil).
type JSONType struct{}

// Name implements Type.
func (JSONType) Name() string { return "json" }

// Convert implements Type.
func (JSONType) Convert(value string) (any, error) {
	if _, err := os.Stat(value); err == nil {
		data, err := os.ReadFile(value)
		if err != nil {
			return nil, fmt.Errorf("unable to load JSON file '%s': %v", value, err)
		}
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("unable to load JSON file '%s': %v", value, err)
		}
		return v, nil
	}

	var v any
	if err := json.Unmarshal([]byte(value), &v); err != nil {
		return nil, fmt.Errorf("unable to parse JSON value: %v", err)
	}
	return v, nil
}

// PortType parses a TCP/UDP port number within [Min, Max].
type PortType struct {
	Min, Max int
}

// NewPortType returns a PortType covering the full valid port range.
func NewPortType() PortType {
	return PortType{Min: 1, Max: 65535}
}

// Name implements Type.
func (PortType) Name() string { return "port" }

// Convert implements Type.
func (t PortType) Convert(value string) (any, error) {
	port, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a valid port number", value)
	}
	if port < t.Min || port > t.Max {
		return nil, fmt.Errorf("port must be between %d and %d", t.Min, t.Max)
	}
	return port, nil
}

// PathType accepts a filesystem path. By default the path must exist and may
// be either a file or a directory.
type PathType struct {
	MustExist bool
	FileOK    bool
	DirOK     bool
}

// NewPathType returns a PathType with the default constraints.
func NewPathType() PathType {
	return PathType{MustExist: true, FileOK: true, DirOK: true}
}

// Name implements Type.
func (PathType) Name() string { return "path" }

// Convert implements Type.
func (t PathType) Convert(value string) (any, error) {
	info, err := os.Stat(value)
	if err != nil {
		if !t.MustExist && os.IsNotExist(err) {
			return value, nil
		}
		return nil, fmt.Errorf("path '%s' does not exist", value)
	}
	if info.IsDir() && !t.DirOK {
		return nil, fmt.Errorf("'%s' is a directory, expected a file", value)
	}
	if !info.IsDir() && !t.FileOK {
		return nil, fmt.Errorf("'%s' is a file, expected a directory", value)
	}
	return value, nil
}

// DirectoryType accepts a path to an existing directory.
type DirectoryType struct{}

// Name implements Type.
func (DirectoryType) Name() string { return "directory" }

// Convert implements Type.
func (DirectoryType) Convert(value string) (any, error) {
	info, err := os.Stat(value)
	if err != nil {
		return nil, fmt.Errorf("directory '%s' does not exist", value)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory", value)
	}
	return value, nil
}

// FileType accepts a path to an existing file, optionally constrained to a
// specific extension (e.g. ".csv").
type FileType struct {
	Extension string
}

// Name implements Type.
func (FileType) Name() string { return "file" }

// Convert implements Type.
func (t FileType) Convert(value string) (any, error) {
	if t.Extension != "" && !strings.HasSuffix(value, t.Extension) {
		return nil, fmt.Errorf("file must have extension '%s'", t.Extension)
	}
	info, err := os.Stat(value)
	if err != nil {
		return nil, fmt.Errorf("file '%s' does not exist", value)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory, expected a file", value)
	}
	return value, nil
}

// ChoiceType accepts one of a fixed set of options. Matching is
// case-insensitive unless CaseSensitive is set; the canonical option
// spelling is returned.
type ChoiceType struct {
	Options       []string
	CaseSensitive bool
}

// Name implements Type.
func (ChoiceType) Name() string { return "choice" }

// Convert implements Type.
func (t ChoiceType) Convert(value string) (any, error) {
	for _, opt := range t.Options {
		if opt == value || (!t.CaseSensitive && strings.EqualFold(opt, value)) {
			return opt, nil
		}
	}
	return nil, fmt.Errorf("'%s' is not one of %s", value, strings.Join(t.Options, ", "))
}
